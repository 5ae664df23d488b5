// Package all registers every solved day with the default puzzle registry.
package all

import (
	_ "aoc2020/internal/days/day01"
	_ "aoc2020/internal/days/day02"
	_ "aoc2020/internal/days/day03"
	_ "aoc2020/internal/days/day04"
	_ "aoc2020/internal/days/day05"
	_ "aoc2020/internal/days/day06"
	_ "aoc2020/internal/days/day07"
	_ "aoc2020/internal/days/day08"
	_ "aoc2020/internal/days/day09"
	_ "aoc2020/internal/days/day10"
	_ "aoc2020/internal/days/day11"
	_ "aoc2020/internal/days/day12"
	_ "aoc2020/internal/days/day13"
)
