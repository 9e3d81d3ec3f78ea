// Package days registers every solved puzzle.
package days

import (
	"github.com/mesh-intelligence/aoc2023/internal/puzzle"

	"github.com/mesh-intelligence/aoc2023/internal/days/day01"
	"github.com/mesh-intelligence/aoc2023/internal/days/day02"
	"github.com/mesh-intelligence/aoc2023/internal/days/day03"
	"github.com/mesh-intelligence/aoc2023/internal/days/day04"
	"github.com/mesh-intelligence/aoc2023/internal/days/day05"
	"github.com/mesh-intelligence/aoc2023/internal/days/day06"
	"github.com/mesh-intelligence/aoc2023/internal/days/day07"
	"github.com/mesh-intelligence/aoc2023/internal/days/day08"
	"github.com/mesh-intelligence/aoc2023/internal/days/day09"
	"github.com/mesh-intelligence/aoc2023/internal/days/day10"
	"github.com/mesh-intelligence/aoc2023/internal/days/day11"
	"github.com/mesh-intelligence/aoc2023/internal/days/day12"
	"github.com/mesh-intelligence/aoc2023/internal/days/day13"
	"github.com/mesh-intelligence/aoc2023/internal/days/day14"
	"github.com/mesh-intelligence/aoc2023/internal/days/day15"
	"github.com/mesh-intelligence/aoc2023/internal/days/day16"
	"github.com/mesh-intelligence/aoc2023/internal/days/day17"
	"github.com/mesh-intelligence/aoc2023/internal/days/day18"
	"github.com/mesh-intelligence/aoc2023/internal/days/day19"
	"github.com/mesh-intelligence/aoc2023/internal/days/day20"
	"github.com/mesh-intelligence/aoc2023/internal/days/day21"
	"github.com/mesh-intelligence/aoc2023/internal/days/day22"
	"github.com/mesh-intelligence/aoc2023/internal/days/day23"
	"github.com/mesh-intelligence/aoc2023/internal/days/day24"
	"github.com/mesh-intelligence/aoc2023/internal/days/day25"
)

// Registry returns a registry holding all 25 days.
func Registry() *puzzle.Registry {
	return puzzle.NewRegistry(All()...)
}

// All lists the days in order.
func All() []puzzle.Day {
	return []puzzle.Day{
		{Number: 1, Title: "Trebuchet?!", Part1: day01.Part1, Part2: day01.Part2},
		{Number: 2, Title: "Cube Conundrum", Part1: day02.Part1, Part2: day02.Part2},
		{Number: 3, Title: "Gear Ratios", Part1: day03.Part1, Part2: day03.Part2},
		{Number: 4, Title: "Scratchcards", Part1: day04.Part1, Part2: day04.Part2},
		{Number: 5, Title: "If You Give A Seed A Fertilizer", Part1: day05.Part1, Part2: day05.Part2},
		{Number: 6, Title: "Wait For It", Part1: day06.Part1, Part2: day06.Part2},
		{Number: 7, Title: "Camel Cards", Part1: day07.Part1, Part2: day07.Part2},
		{Number: 8, Title: "Haunted Wasteland", Part1: day08.Part1, Part2: day08.Part2},
		{Number: 9, Title: "Mirage Maintenance", Part1: day09.Part1, Part2: day09.Part2},
		{Number: 10, Title: "Pipe Maze", Part1: day10.Part1, Part2: day10.Part2},
		{Number: 11, Title: "Cosmic Expansion", Part1: day11.Part1, Part2: day11.Part2},
		{Number: 12, Title: "Hot Springs", Part1: day12.Part1, Part2: day12.Part2},
		{Number: 13, Title: "Point of Incidence", Part1: day13.Part1, Part2: day13.Part2},
		{Number: 14, Title: "Parabolic Reflector Dish", Part1: day14.Part1, Part2: day14.Part2},
		{Number: 15, Title: "Lens Library", Part1: day15.Part1, Part2: day15.Part2},
		{Number: 16, Title: "The Floor Will Be Lava", Part1: day16.Part1, Part2: day16.Part2},
		{Number: 17, Title: "Clumsy Crucible", Part1: day17.Part1, Part2: day17.Part2},
		{Number: 18, Title: "Lavaduct Lagoon", Part1: day18.Part1, Part2: day18.Part2},
		{Number: 19, Title: "Aplenty", Part1: day19.Part1, Part2: day19.Part2},
		{Number: 20, Title: "Pulse Propagation", Part1: day20.Part1, Part2: day20.Part2},
		{Number: 21, Title: "Step Counter", Part1: day21.Part1, Part2: day21.Part2},
		{Number: 22, Title: "Sand Slabs", Part1: day22.Part1, Part2: day22.Part2},
		{Number: 23, Title: "A Long Walk", Part1: day23.Part1, Part2: day23.Part2},
		{Number: 24, Title: "Never Tell Me The Odds", Part1: day24.Part1, Part2: day24.Part2},
		{Number: 25, Title: "Snowverload", Part1: day25.Part1},
	}
}
