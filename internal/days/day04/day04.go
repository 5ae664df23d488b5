// Package day04 solves "Passport Processing": count passports carrying the
// required fields, then those whose fields also pass validation.
package day04

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"aoc2020/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{
		Number: 4,
		Title:  "Passport Processing",
		Parts: map[puzzle.Part]puzzle.Solver{
			puzzle.PartOne: solveWith(Passport.HasRequired),
			puzzle.PartTwo: solveWith(Passport.Valid),
		},
		Examples: []puzzle.Example{
			{Part: puzzle.PartOne, Input: sample, Want: "2"},
			{Part: puzzle.PartTwo, Input: sample, Want: "2"},
		},
	})
}

const sample = `ecl:gry pid:860033327 eyr:2020 hcl:#fffffd
byr:1937 iyr:2017 cid:147 hgt:183cm

iyr:2013 ecl:amb cid:350 eyr:2023 pid:028048884
hcl:#cfa07d byr:1929

hcl:#ae17e1 iyr:2013
eyr:2024
ecl:brn pid:760753108 byr:1931
hgt:179cm

hcl:#cfa07d eyr:2025 pid:166559648
iyr:2011 ecl:brn hgt:59in
`

func solveWith(keep func(Passport) bool) puzzle.Solver {
	return func(_ context.Context, input string) (any, error) {
		passports, err := Parse(input)
		if err != nil {
			return nil, err
		}
		return Count(passports, keep), nil
	}
}

// Passport maps field keys to their raw values.
type Passport map[string]string

// Required lists the mandatory keys; cid is optional.
var Required = []string{"byr", "iyr", "eyr", "hgt", "hcl", "ecl", "pid"}

var knownKeys = map[string]bool{
	"byr": true, "iyr": true, "eyr": true, "hgt": true,
	"hcl": true, "ecl": true, "pid": true, "cid": true,
}

// Parse reads blank-line separated records of whitespace separated key:value pairs.
// Errors name the line of the offending field.
func Parse(input string) ([]Passport, error) {
	var out []Passport
	var p Passport
	for i, line := range puzzle.Lines(input) {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			if p != nil {
				out = append(out, p)
				p = nil
			}
			continue
		}
		if p == nil {
			p = Passport{}
		}
		for _, field := range fields {
			key, value, ok := strings.Cut(field, ":")
			if !ok {
				return nil, puzzle.Malformed(i+1, "field %q has no value", field)
			}
			if !knownKeys[key] {
				return nil, puzzle.Malformed(i+1, "unknown field %q", key)
			}
			p[key] = value
		}
	}
	if p != nil {
		out = append(out, p)
	}
	return out, nil
}

// HasRequired reports whether every required field is present.
func (p Passport) HasRequired() bool {
	for _, k := range Required {
		if _, ok := p[k]; !ok {
			return false
		}
	}
	return true
}

var (
	heightRx = regexp.MustCompile(`^(\d{2,3})(cm|in)$`)
	hairRx   = regexp.MustCompile(`^#[0-9a-f]{6}$`)
	eyeRx    = regexp.MustCompile(`^(?:amb|blu|brn|gry|grn|hzl|oth)$`)
	pidRx    = regexp.MustCompile(`^[0-9]{9}$`)
)

// Valid reports whether every required field is present and well formed.
func (p Passport) Valid() bool {
	return p.HasRequired() &&
		yearIn(p["byr"], 1920, 2002) &&
		yearIn(p["iyr"], 2010, 2020) &&
		yearIn(p["eyr"], 2020, 2030) &&
		validHeight(p["hgt"]) &&
		hairRx.MatchString(p["hcl"]) &&
		eyeRx.MatchString(p["ecl"]) &&
		pidRx.MatchString(p["pid"])
}

func yearIn(s string, lo, hi int) bool {
	if len(s) != 4 {
		return false
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= lo && n <= hi
}

func validHeight(s string) bool {
	m := heightRx.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	n, _ := strconv.Atoi(m[1])
	if m[2] == "in" {
		return n >= 59 && n <= 76
	}
	return n >= 150 && n <= 193
}

// Count returns how many passports satisfy keep.
func Count(passports []Passport, keep func(Passport) bool) int {
	n := 0
	for _, p := range passports {
		if keep(p) {
			n++
		}
	}
	return n
}
