package content

import (
	"fmt"
	"hash/fnv"
)

// DailyBonusXP is the bonus awarded for completing the daily challenge.
const DailyBonusXP = 50

// dailyPool holds the challenge templates the daily rotation draws from.
// Test-case input is bound as `stdin` inside the sandbox.
var dailyPool = []CodingExercise{
	{
		Prompt: "Create a function that returns the sum of all even numbers from 1 to n.",
		TestCases: []TestCase{
			{Input: "10", Expected: "30"},
			{Input: "5", Expected: "6"},
			{Input: "1", Expected: "0"},
		},
		Hints: []string{
			"Use a loop from 1 to n",
			"Check if number % 2 == 0",
			"Add even numbers to a sum",
		},
		Difficulty:  2,
		Concept:     "loops",
		StarterCode: "def sum_evens(n):\n    # Your code here\n    return 0\n\nprint(sum_evens(int(stdin)))",
	},
	{
		Prompt: "Write a function that reverses a string.",
		TestCases: []TestCase{
			{Input: "hello", Expected: "olleh"},
			{Input: "Python", Expected: "nohtyP"},
		},
		Hints: []string{
			"Use string slicing [::-1]",
			"Or use a loop to build the reversed string",
		},
		Difficulty:  2,
		Concept:     "strings",
		StarterCode: "def reverse_string(s):\n    # Your code here\n    return s\n\nprint(reverse_string(stdin))",
	},
	{
		Prompt: "Create a function that counts vowels in a string.",
		TestCases: []TestCase{
			{Input: "hello", Expected: "2"},
			{Input: "Python", Expected: "1"},
		},
		Hints: []string{
			"Define vowels = 'aeiouAEIOU'",
			"Loop through the string",
			"Check if each character is in vowels",
		},
		Difficulty:  2,
		Concept:     "strings",
		StarterCode: "def count_vowels(s):\n    # Your code here\n    return 0\n\nprint(count_vowels(stdin))",
	},
}

// DailyChallenge returns the challenge for the given calendar date
// (learner.DateFormat). Deterministic: the same date always yields the same
// exercise, so a restart mid-day cannot swap the challenge.
func DailyChallenge(date string) CodingExercise {
	h := fnv.New32a()
	h.Write([]byte(date))
	pick := dailyPool[int(h.Sum32())%len(dailyPool)]
	pick.ID = fmt.Sprintf("daily_%s_%d", date, int(h.Sum32())%len(dailyPool)+1)
	return pick
}
