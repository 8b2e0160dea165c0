package levels

func init() {
	register("arena", arena)
	register("maze", maze)
	register("pillars", pillars)
}

const arena = `
##########################
#........................#
#........................#
#....####........####....#
#....#..............#....#
#....#..............#....#
#...........>............#
#....#..............#....#
#....#..............#....#
#....####........####....#
#........................#
#........................#
##########################
`

const maze = `
#####################
#v..#.......#.......#
#.#.#.#####.#.#####.#
#.#...#.....#.#...#.#
#.#####.#####.#.#.#.#
#.....#.....#...#...#
#####.#####.#####.###
#...#.....#.....#...#
#.#.#####.#####.#.#.#
#.#.......#.......#.#
#####################
`

const pillars = `
##############################
#............................#
#..#....#....#....#....#.....#
#............................#
#............................#
#..#....#....#....#....#.....#
#.............^..............#
#..#....#....#....#....#.....#
#............................#
#............................#
#..#....#....#....#....#.....#
#............................#
##############################
`
