// Command aoc2021 runs the Advent of Code 2021 solutions.
//
// Usage:
//
//	aoc2021 run [day] [--sample]
//	aoc2021 all
//	aoc2021 list
//
// Inputs are read from <input_dir>/<day>.input, configured by the YAML
// file named with --config.
package main

import (
	"log"

	_ "aoc2021/internal/day01"
	_ "aoc2021/internal/day02"
	_ "aoc2021/internal/day03"
	_ "aoc2021/internal/day04"
	_ "aoc2021/internal/day05"
	_ "aoc2021/internal/day06"
	_ "aoc2021/internal/day07"
	_ "aoc2021/internal/day08"
	_ "aoc2021/internal/day09"
	_ "aoc2021/internal/day10"
	_ "aoc2021/internal/day11"
	_ "aoc2021/internal/day12"
	_ "aoc2021/internal/day13"
	_ "aoc2021/internal/day14"
)

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
