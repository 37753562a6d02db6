package asset

// Tower is the launch tower with its lattice and lightning mast
const Tower = `   |
  _|_
 |___|
 |\ /|
 |/ \|
 |\ /|
 |/ \|
 |\ /|
 |/ \|
 |\ /|
 |/ \|
 |\ /|
 |/ \|
 |\ /|
 |/ \|
 |\ /|
 |/ \|
 |\ /|
 |/ \|
 |\ /|
 |/ \|
 |\ /|
 |/ \|
 |\ /|
 |/ \|
 |\ /|
 |___|
_|___|_`

// Rocket is the stacked vehicle: capsule, core stage and two side boosters
const Rocket = `         A
        /|\
        |||
       /_|_\
      /     \
     / ORION \
    |_________|
    |=========|
 /\ |         | /\
/  \|         |/  \
|  ||         ||  |
|  ||   (*)   ||  |
|  ||    N    ||  |
|  ||    A    ||  |
|  ||    S    ||  |
|  ||    A    ||  |
|  ||         ||  |
|==||=========||==|
|  ||         ||  |
|  ||   SLS   ||  |
|  ||         ||  |
|  ||         ||  |
|  ||         ||  |
|==||=========||==|
|  ||         ||  |
|  ||         ||  |
|  ||_________||  |
|__|  /_\ /_\  |__|
/__\           /__\`

// RocketColors assigns a color pair to each Rocket cell, position for position
const RocketColors = `         4
        444
        444
       44444
      4     4
     4 44444 4
    55555555555
    55555555555
 44 5         5 44
4  45         54  4
4  45         54  4
4  45   666   54  4
4  45    7    54  4
4  45    7    54  4
4  45    7    54  4
4  45    7    54  4
4  45         54  4
4444555555555554444
4  45         54  4
4  45   444   54  4
4  45         54  4
4  45         54  4
4  45         54  4
4444555555555554444
4  45         54  4
4  45         54  4
4  4555555555554  4
4444  111 111  4444
4444           4444`

// ArmStages are the crew access arm frames, fully extended first
var ArmStages = [...]string{
	`_____________
|===========|`,
	`____________
|==========|`,
	`___________
|=========|`,
	`__________
|========|`,
	`_________
|=======|`,
	`________
|======|`,
	`_______
|=====|`,
	`______
|====|`,
}

// Countdown numerals
const (
	One = ` #
##
 #
 #
###`
	Two = `###
  #
###
#
###`
	Three = `###
  #
###
  #
###`
	Four = `# #
# #
###
  #
  #`
	Five = `###
#
###
  #
###`
	Six = `###
#
###
# #
###`
	Seven = `###
  #
  #
  #
  #`
	Eight = `###
# #
###
# #
###`
	Nine = `###
# #
###
  #
###`
	Ten = ` #  ###
##  # #
 #  # #
 #  # #
### ###`
)

// Liftoff is the banner shown once the vehicle clears the pad
const Liftoff = `#   ### ### ### ### ### ### #
#    #  #    #  # # #   #   #
#    #  ##   #  # # ##  ##  #
#    #  #    #  # # #   #
### ### #    #  ### #   #   #`

