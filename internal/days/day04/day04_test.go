package day04

import (
	"testing"

	"aoc2020/internal/puzzle"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	got, err := Parse(sample)
	require.NoError(t, err)

	want := []Passport{
		{"ecl": "gry", "pid": "860033327", "eyr": "2020", "hcl": "#fffffd", "byr": "1937", "iyr": "2017", "cid": "147", "hgt": "183cm"},
		{"iyr": "2013", "ecl": "amb", "cid": "350", "eyr": "2023", "pid": "028048884", "hcl": "#cfa07d", "byr": "1929"},
		{"hcl": "#ae17e1", "iyr": "2013", "eyr": "2024", "ecl": "brn", "pid": "760753108", "byr": "1931", "hgt": "179cm"},
		{"hcl": "#cfa07d", "eyr": "2025", "pid": "166559648", "iyr": "2011", "ecl": "brn", "hgt": "59in"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse("byr:1937 foo:bar")
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)

	_, err = Parse("byr:1937\n\nhgt")
	require.ErrorIs(t, err, puzzle.ErrMalformedInput)
	assert.Contains(t, err.Error(), "line 3")
}

func TestParse_MalformedLineNumbers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  string
	}{
		{"double blank line", "byr:1937\n\n\nhgt", "line 4: "},
		{"second line of record", "byr:1937\niyr:2017 what\n", "line 2: "},
		{"after several records", "byr:1937\n\niyr:2017\ncid:1\n\n\n\necl:xyz:1 pid", "line 8: "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.ErrorIs(t, err, puzzle.ErrMalformedInput)
			assert.Contains(t, err.Error(), tt.line)
		})
	}

	got, err := Parse("byr:1\n\n\n\niyr:2\n")
	require.NoError(t, err)
	assert.Equal(t, []Passport{{"byr": "1"}, {"iyr": "2"}}, got)
}

func TestPart1_Example(t *testing.T) {
	passports, err := Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, 2, Count(passports, Passport.HasRequired))
}

func TestPart2_InvalidExamples(t *testing.T) {
	passports, err := Parse(`eyr:1972 cid:100
hcl:#18171d ecl:amb hgt:170 pid:186cm iyr:2018 byr:1926

iyr:2019
hcl:#602927 eyr:1967 hgt:170cm
ecl:grn pid:012533040 byr:1946

hcl:dab227 iyr:2012
ecl:brn hgt:182cm pid:021572410 eyr:2020 byr:1992 cid:277

hgt:59cm ecl:zzz
eyr:2038 hcl:74454a iyr:2023
pid:3556412378 byr:2007`)
	require.NoError(t, err)
	assert.Equal(t, 0, Count(passports, Passport.Valid))
}

func TestPart2_ValidExamples(t *testing.T) {
	passports, err := Parse(`pid:087499704 hgt:74in ecl:grn iyr:2012 eyr:2030 byr:1980
hcl:#623a2f

eyr:2029 ecl:blu cid:129 byr:1989
iyr:2014 pid:896056539 hcl:#a97842 hgt:165cm

hcl:#888785
hgt:164cm byr:2001 iyr:2015 cid:88
pid:545766238 ecl:hzl
eyr:2022

iyr:2010 hgt:158cm hcl:#b6652a ecl:blu byr:1944 eyr:2021 pid:093154719`)
	require.NoError(t, err)
	assert.Equal(t, 4, Count(passports, Passport.Valid))
}

func TestFieldRules(t *testing.T) {
	assert.True(t, yearIn("2002", 1920, 2002))
	assert.False(t, yearIn("2003", 1920, 2002))
	assert.False(t, yearIn("02002", 1920, 2002))

	assert.True(t, validHeight("60in"))
	assert.True(t, validHeight("190cm"))
	assert.False(t, validHeight("190in"))
	assert.False(t, validHeight("190"))

	assert.True(t, hairRx.MatchString("#123abc"))
	assert.False(t, hairRx.MatchString("#123abz"))
	assert.False(t, hairRx.MatchString("123abc"))

	assert.True(t, eyeRx.MatchString("brn"))
	assert.False(t, eyeRx.MatchString("wat"))

	assert.True(t, pidRx.MatchString("000000001"))
	assert.False(t, pidRx.MatchString("0123456789"))
}
