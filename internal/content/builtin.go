package content

// BuiltinLessons returns the authored lesson catalog. Content is immutable;
// callers receive a fresh slice on every call so the registry owns its copy.
func BuiltinLessons() []Lesson {
	return []Lesson{
		{
			ID:      "basics_01_variables",
			Title:   "Variables and Assignment",
			Concept: "Variables are containers for storing data. You don't declare the type - the language figures it out automatically!\n\nCreating Variables:\n- Use the equals sign (=) to assign values\n- Variable names should be descriptive\n- Use lowercase with underscores (snake_case)\n\nRules:\n- Names can contain letters, numbers, and underscores\n- Must start with a letter or underscore\n- Case-sensitive (name != Name)",
			Examples: []Example{
				{Code: "name = 'Alice'\nage = 25\nis_student = True", Explanation: "Three variables with different types: string, integer, and boolean"},
				{Code: "x = 10\nx = x + 5\nprint(x)  # Outputs: 15", Explanation: "Variables can be updated using their current value"},
			},
			Exercises: []CodingExercise{
				{
					ID:     "basics_01_ex1",
					Prompt: "Create a variable called 'greeting' with the value 'Hello World' and print it.",
					TestCases: []TestCase{
						{Input: "", Expected: "Hello World"},
					},
					Hints: []string{
						"Use the assignment operator: greeting = ...",
						"Use print() to display the value",
						"Strings need quotes: 'Hello World'",
					},
					Difficulty:  1,
					Concept:     "variables",
					StarterCode: "# Create your variable here\n",
				},
				{
					ID:     "basics_01_ex2",
					Prompt: "Create two variables: 'a' with value 5 and 'b' with value 3. Print their sum.",
					TestCases: []TestCase{
						{Input: "", Expected: "8"},
					},
					Hints: []string{
						"Create both variables first",
						"Use + to add numbers",
						"print(a + b)",
					},
					Difficulty: 1,
					Concept:    "variables",
				},
			},
			SingleChoice: []SingleChoiceQuestion{
				{
					ID:          "basics_01_mcq1",
					Question:    "Which of the following is a valid variable name?",
					Choices:     []string{"2fast", "my-variable", "my_variable", "my variable"},
					Correct:     2,
					Explanation: "'my_variable' is valid. Variable names can't start with numbers, contain hyphens, or have spaces.",
					Difficulty:  1,
					Concept:     "variables",
				},
				{
					ID:          "basics_01_mcq2",
					Question:    "What is the output of: x = 5; x = x + 3; print(x)",
					Choices:     []string{"5", "8", "53", "Error"},
					Correct:     1,
					Explanation: "x starts at 5, then we add 3, so x becomes 8.",
					Difficulty:  1,
					Concept:     "variables",
				},
			},
			MultiChoice: []MultiChoiceQuestion{
				{
					ID:          "basics_01_multi1",
					Question:    "Which of the following are valid ways to assign variables? (Select all that apply)",
					Choices:     []string{"x = 10", "10 = x", "x, y = 5, 10", "x = y = 0"},
					Correct:     []int{0, 2, 3},
					Explanation: "You can assign single values (x = 10), multiple values (x, y = 5, 10), or chain assignments (x = y = 0). But you can't assign to a literal (10 = x).",
					Difficulty:  2,
					Concept:     "variables",
				},
			},
			OutputDrills: []OutputDrill{
				{
					ID:          "basics_01_drill1",
					Code:        "x = 10\ny = 20\nx = y\nprint(x)",
					Expected:    "20",
					Explanation: "x is assigned the value of y, which is 20.",
					Difficulty:  1,
					Concept:     "variables",
				},
			},
			BugFixDrills: []BugFixDrill{
				{
					ID:          "basics_01_bug1",
					BuggyCode:   "x = 5\nprint(X)",
					BugType:     "runtime",
					Description: "This code has a naming error - can you spot it?",
					FixedCode:   "x = 5\nprint(x)",
					Explanation: "Variable names are case-sensitive! 'X' and 'x' are different variables. The variable was defined as lowercase 'x' but we tried to print uppercase 'X'.",
					Difficulty:  1,
					Concept:     "variables",
					Hints: []string{
						"Look carefully at the variable name",
						"Remember: names are case-sensitive",
						"The variable is 'x' (lowercase) but we're printing 'X' (uppercase)",
					},
				},
				{
					ID:          "basics_01_bug2",
					BuggyCode:   "name = 'Alice\nprint(name)",
					BugType:     "syntax",
					Description: "There's a syntax error with the string",
					FixedCode:   "name = 'Alice'\nprint(name)",
					Explanation: "Strings must have matching quotes. The string 'Alice' was missing its closing quote.",
					Difficulty:  1,
					Concept:     "variables",
					Hints: []string{
						"Check the quotes around 'Alice'",
						"Every opening quote needs a closing quote",
						"Add a closing quote after Alice",
					},
				},
			},
			XPReward:  10,
			SkillPath: "basics",
		},
		{
			ID:      "basics_02_types",
			Title:   "Data Types",
			Concept: "Several built-in types cover different kinds of data:\n\nNumeric Types:\n- int: Whole numbers (42, -17, 0)\n- float: Decimal numbers (3.14, -0.5, 2.0)\n\nText Type:\n- str: Text/strings ('hello', \"world\")\n\nBoolean Type:\n- bool: True or False\n\nType Conversion:\n- int(), float(), str() to convert between types",
			Examples: []Example{
				{Code: "x = 10        # int\ny = 3.14      # float\nname = 'Bob'  # str\nactive = True # bool", Explanation: "Different data types in action"},
				{Code: "num = '42'\nresult = int(num) + 8\nprint(result)  # 50", Explanation: "Converting string to int for math"},
			},
			Exercises: []CodingExercise{
				{
					ID:     "basics_02_ex1",
					Prompt: "Convert the string '100' to an integer and add 50 to it. Print the result.",
					TestCases: []TestCase{
						{Input: "", Expected: "150"},
					},
					Hints: []string{
						"Use int() to convert",
						"Then add 50",
						"int('100') + 50",
					},
					Difficulty: 2,
					Concept:    "types",
				},
			},
			SingleChoice: []SingleChoiceQuestion{
				{
					ID:          "basics_02_mcq1",
					Question:    "What is the type of: x = 3.14",
					Choices:     []string{"int", "float", "str", "bool"},
					Correct:     1,
					Explanation: "3.14 is a decimal number, so it's a float.",
					Difficulty:  1,
					Concept:     "types",
				},
			},
			OutputDrills: []OutputDrill{
				{
					ID:          "basics_02_drill1",
					Code:        "x = '5'\ny = '3'\nprint(x + y)",
					Expected:    "53",
					Explanation: "When you add strings, they concatenate rather than adding mathematically.",
					Difficulty:  1,
					Concept:     "types",
				},
			},
			Prerequisites: []string{"basics_01_variables"},
			XPReward:      15,
			SkillPath:     "basics",
		},
		{
			ID:      "control_01_if",
			Title:   "If Statements",
			Concept: "Make decisions in your code using if/elif/else:\n\nSyntax:\nif condition:\n    # code if True\nelif other_condition:\n    # code if first is False but this is True\nelse:\n    # code if all False\n\nComparison Operators:\n- == equal to\n- != not equal\n- < less than\n- > greater than\n- <= less than or equal\n- >= greater than or equal",
			Examples: []Example{
				{Code: "age = 18\nif age >= 18:\n    print('Adult')\nelse:\n    print('Minor')", Explanation: "Simple if/else decision"},
			},
			Exercises: []CodingExercise{
				{
					ID:     "control_01_ex1",
					Prompt: "Write code that checks if a variable 'score' (value 85) is >= 60. If yes, print 'Pass', otherwise print 'Fail'.",
					TestCases: []TestCase{
						{Input: "", Expected: "Pass"},
					},
					Hints: []string{
						"score = 85",
						"if score >= 60:",
						"Use print() in each branch",
					},
					Difficulty:  2,
					Concept:     "conditionals",
					StarterCode: "score = 85\n# Add your if statement\n",
				},
			},
			SingleChoice: []SingleChoiceQuestion{
				{
					ID:          "control_01_mcq1",
					Question:    "What does == do?",
					Choices:     []string{"Assigns a value", "Compares two values", "Adds two numbers", "None of the above"},
					Correct:     1,
					Explanation: "== is the equality comparison operator. = is for assignment.",
					Difficulty:  1,
					Concept:     "conditionals",
				},
			},
			OutputDrills: []OutputDrill{
				{
					ID:          "control_01_drill1",
					Code:        "x = 10\nif x > 5:\n    print('Big')\nelse:\n    print('Small')",
					Expected:    "Big",
					Explanation: "Since 10 > 5 is True, 'Big' is printed.",
					Difficulty:  1,
					Concept:     "conditionals",
				},
			},
			Prerequisites: []string{"basics_02_types"},
			XPReward:      20,
			SkillPath:     "control_flow",
		},
		{
			ID:      "control_02_loops",
			Title:   "For Loops",
			Concept: "Repeat code a specific number of times or iterate over sequences.\n\nBasic Syntax:\nfor variable in sequence:\n    # code to repeat\n\nRange Function:\n- range(n): numbers from 0 to n-1\n- range(start, stop): numbers from start to stop-1\n- range(start, stop, step): with custom step",
			Examples: []Example{
				{Code: "for i in range(5):\n    print(i)  # 0, 1, 2, 3, 4", Explanation: "Loop 5 times"},
				{Code: "for num in [1, 2, 3]:\n    print(num * 2)", Explanation: "Loop over a list"},
			},
			Exercises: []CodingExercise{
				{
					ID:     "control_02_ex1",
					Prompt: "Use a for loop to print numbers 1 through 5, each on a new line.",
					TestCases: []TestCase{
						{Input: "", Expected: "1\n2\n3\n4\n5"},
					},
					Hints: []string{
						"Use range(1, 6) for 1-5",
						"for i in range(...):",
						"print(i)",
					},
					Difficulty: 2,
					Concept:    "loops",
				},
			},
			SingleChoice: []SingleChoiceQuestion{
				{
					ID:          "control_02_mcq1",
					Question:    "What does range(3) produce?",
					Choices:     []string{"[1, 2, 3]", "[0, 1, 2]", "[0, 1, 2, 3]", "[1, 2]"},
					Correct:     1,
					Explanation: "range(3) generates numbers from 0 to 2 (3 is not included).",
					Difficulty:  1,
					Concept:     "loops",
				},
			},
			OutputDrills: []OutputDrill{
				{
					ID:          "control_02_drill1",
					Code:        "total = 0\nfor i in range(3):\n    total += i\nprint(total)",
					Expected:    "3",
					Explanation: "Loop adds 0 + 1 + 2 = 3",
					Difficulty:  2,
					Concept:     "loops",
				},
			},
			BugFixDrills: []BugFixDrill{
				{
					ID:          "control_02_bug1",
					BuggyCode:   "for i in range(5)\n    print(i)",
					BugType:     "syntax",
					Description: "Missing punctuation in the for loop",
					FixedCode:   "for i in range(5):\n    print(i)",
					Explanation: "For loops (and all control structures) need a colon (:) at the end of the line.",
					Difficulty:  1,
					Concept:     "loops",
					Hints: []string{
						"What comes at the end of a for loop line?",
						"Look for a missing colon (:)",
						"Add : after range(5)",
					},
				},
				{
					ID:          "control_02_bug2",
					BuggyCode:   "for i in range(10):\nprint(i)",
					BugType:     "indentation",
					Description: "Indentation problem",
					FixedCode:   "for i in range(10):\n    print(i)",
					Explanation: "Code inside a loop must be indented. Indentation defines which code belongs to the loop.",
					Difficulty:  1,
					Concept:     "loops",
					Hints: []string{
						"Check the indentation",
						"Code inside loops must be indented",
						"Add 4 spaces before print(i)",
					},
				},
				{
					ID:          "control_02_bug3",
					BuggyCode:   "total = 0\nfor i in range(5):\n    total = i\nprint(total)",
					BugType:     "logic",
					Description: "This should sum numbers 0-4, but it doesn't work correctly",
					FixedCode:   "total = 0\nfor i in range(5):\n    total += i\nprint(total)",
					Explanation: "Using = assigns a value, but += adds to the existing value. We need += to accumulate the sum.",
					Difficulty:  2,
					Concept:     "loops",
					Hints: []string{
						"We want to ADD to total, not replace it",
						"Look at how total is being updated",
						"Use += instead of = to add to total",
					},
				},
			},
			Prerequisites: []string{"control_01_if"},
			XPReward:      25,
			SkillPath:     "control_flow",
		},
		{
			ID:      "functions_01_basics",
			Title:   "Function Basics",
			Concept: "Functions are reusable blocks of code that perform a specific task.\n\nSyntax:\ndef function_name(parameters):\n    # code\n    return result\n\nWhy Use Functions?\n- Avoid repeating code\n- Make code more organized\n- Easier to test and debug",
			Examples: []Example{
				{Code: "def greet(name):\n    return 'Hello, ' + name + '!'\n\nprint(greet('Alice'))", Explanation: "Function with parameter and return value"},
				{Code: "def add(a, b):\n    return a + b\n\nresult = add(5, 3)\nprint(result)  # 8", Explanation: "Function for addition"},
			},
			Exercises: []CodingExercise{
				{
					ID:     "functions_01_ex1",
					Prompt: "Create a function called 'double' that takes a number and returns it multiplied by 2. Then call it with 7 and print the result.",
					TestCases: []TestCase{
						{Input: "", Expected: "14"},
					},
					Hints: []string{
						"def double(num):",
						"    return num * 2",
						"print(double(7))",
					},
					Difficulty: 3,
					Concept:    "functions",
				},
			},
			SingleChoice: []SingleChoiceQuestion{
				{
					ID:          "functions_01_mcq1",
					Question:    "What keyword is used to return a value from a function?",
					Choices:     []string{"give", "return", "send", "output"},
					Correct:     1,
					Explanation: "The 'return' keyword sends a value back from a function.",
					Difficulty:  1,
					Concept:     "functions",
				},
			},
			MultiChoice: []MultiChoiceQuestion{
				{
					ID:       "functions_01_multi1",
					Question: "Which statements about functions are true? (Select all that apply)",
					Choices: []string{
						"Functions can take parameters",
						"Functions must always return a value",
						"Functions help organize code",
						"You can call a function multiple times",
					},
					Correct:     []int{0, 2, 3},
					Explanation: "Functions can take parameters, help organize code, and can be called many times. They don't always need to return a value.",
					Difficulty:  2,
					Concept:     "functions",
				},
			},
			OutputDrills: []OutputDrill{
				{
					ID:          "functions_01_drill1",
					Code:        "def triple(x):\n    return x * 3\n\nprint(triple(4))",
					Expected:    "12",
					Explanation: "The function multiplies 4 by 3, returning 12.",
					Difficulty:  1,
					Concept:     "functions",
				},
			},
			Prerequisites: []string{"control_02_loops"},
			XPReward:      30,
			SkillPath:     "functions",
		},
		{
			ID:      "data_01_lists",
			Title:   "Lists",
			Concept: "Lists store multiple items in a single variable. They're ordered and changeable.\n\nCreating Lists:\nmy_list = [1, 2, 3, 4, 5]\nmixed = [1, 'hello', True, 3.14]\n\nCommon Operations:\n- my_list[0]: Access first item (index 0)\n- my_list.append(item): Add to end\n- len(my_list): Get length\n- item in my_list: Check if exists",
			Examples: []Example{
				{Code: "fruits = ['apple', 'banana', 'cherry']\nprint(fruits[0])  # apple\nfruits.append('orange')\nprint(len(fruits))  # 4", Explanation: "List operations"},
			},
			Exercises: []CodingExercise{
				{
					ID:     "data_01_ex1",
					Prompt: "Create a list of numbers [10, 20, 30], append 40 to it, then print the length of the list.",
					TestCases: []TestCase{
						{Input: "", Expected: "4"},
					},
					Hints: []string{
						"numbers = [10, 20, 30]",
						"numbers.append(40)",
						"print(len(numbers))",
					},
					Difficulty: 2,
					Concept:    "lists",
				},
			},
			SingleChoice: []SingleChoiceQuestion{
				{
					ID:          "data_01_mcq1",
					Question:    "What is the index of the first element in a list?",
					Choices:     []string{"1", "0", "-1", "None"},
					Correct:     1,
					Explanation: "Lists use 0-based indexing, so the first element is at index 0.",
					Difficulty:  1,
					Concept:     "lists",
				},
			},
			OutputDrills: []OutputDrill{
				{
					ID:          "data_01_drill1",
					Code:        "nums = [5, 10, 15]\nprint(nums[1])",
					Expected:    "10",
					Explanation: "Index 1 refers to the second element, which is 10.",
					Difficulty:  1,
					Concept:     "lists",
				},
			},
			Prerequisites: []string{"functions_01_basics"},
			XPReward:      25,
			SkillPath:     "data_structures",
		},
		{
			ID:      "data_02_dictionaries",
			Title:   "Dictionaries",
			Concept: "Dictionaries store data in key-value pairs. They're very fast for lookups.\n\nCreating Dictionaries:\nmy_dict = {'name': 'Alice', 'age': 25}\nempty_dict = {}\n\nCommon Operations:\n- my_dict['name']: Access value by key\n- my_dict['city'] = 'NYC': Add/update key-value pair\n- 'name' in my_dict: Check if key exists\n- my_dict.keys(), my_dict.values()\n- my_dict.get('key', default): Safe access with default",
			Examples: []Example{
				{Code: "person = {'name': 'Bob', 'age': 30}\nprint(person['name'])  # Bob\nperson['city'] = 'Boston'", Explanation: "Creating and modifying a dictionary"},
				{Code: "scores = {'Alice': 95, 'Bob': 87}\nfor name in scores:\n    print(name, scores[name])", Explanation: "Iterating through dictionary keys"},
			},
			Exercises: []CodingExercise{
				{
					ID:     "data_02_ex1",
					Prompt: "Create a dictionary with keys 'apple', 'banana', 'orange' and values 1, 2, 3. Print the value for 'banana'.",
					TestCases: []TestCase{
						{Input: "", Expected: "2"},
					},
					Hints: []string{
						"fruits = {'apple': 1, 'banana': 2, 'orange': 3}",
						"Access with fruits['banana']",
						"print(fruits['banana'])",
					},
					Difficulty: 2,
					Concept:    "dictionaries",
				},
			},
			SingleChoice: []SingleChoiceQuestion{
				{
					ID:          "data_02_mcq1",
					Question:    "How do you access a value in a dictionary?",
					Choices:     []string{"dict[0]", "dict['key']", "dict.get(0)", "dict.value"},
					Correct:     1,
					Explanation: "Use square brackets with the key name: dict['key']",
					Difficulty:  1,
					Concept:     "dictionaries",
				},
			},
			OutputDrills: []OutputDrill{
				{
					ID:          "data_02_drill1",
					Code:        "d = {'x': 10, 'y': 20}\nprint(d['x'] + d['y'])",
					Expected:    "30",
					Explanation: "Adds the values associated with keys 'x' and 'y'.",
					Difficulty:  1,
					Concept:     "dictionaries",
				},
			},
			Prerequisites: []string{"data_01_lists"},
			XPReward:      30,
			SkillPath:     "data_structures",
		},
		{
			ID:      "control_03_while",
			Title:   "While Loops",
			Concept: "While loops repeat code as long as a condition is True.\n\nSyntax:\nwhile condition:\n    # code to repeat\n    # update condition to avoid infinite loop\n\nCommon Uses:\n- Repeat until input is valid\n- Process data until the end is reached\n- Game loops that run until game over\n\nImportant: Always ensure the condition becomes False eventually!",
			Examples: []Example{
				{Code: "count = 0\nwhile count < 5:\n    print(count)\n    count += 1", Explanation: "Loop that counts from 0 to 4"},
				{Code: "total = 0\nnum = 1\nwhile num <= 10:\n    total += num\n    num += 1\nprint(total)  # 55", Explanation: "Sum numbers 1 through 10"},
			},
			Exercises: []CodingExercise{
				{
					ID:     "control_03_ex1",
					Prompt: "Use a while loop to print numbers 1 through 3, each on a new line.",
					TestCases: []TestCase{
						{Input: "", Expected: "1\n2\n3"},
					},
					Hints: []string{
						"Start with n = 1",
						"Loop while n <= 3",
						"Print n, then increment: n += 1",
					},
					Difficulty: 2,
					Concept:    "loops",
				},
			},
			SingleChoice: []SingleChoiceQuestion{
				{
					ID:          "control_03_mcq1",
					Question:    "What happens if a while loop condition is always True?",
					Choices:     []string{"Loop runs once", "Loop never runs", "Infinite loop", "Syntax error"},
					Correct:     2,
					Explanation: "If the condition never becomes False, you get an infinite loop.",
					Difficulty:  1,
					Concept:     "loops",
				},
			},
			OutputDrills: []OutputDrill{
				{
					ID:          "control_03_drill1",
					Code:        "x = 3\nwhile x > 0:\n    print(x)\n    x -= 1",
					Expected:    "3\n2\n1",
					Explanation: "Counts down from 3 to 1.",
					Difficulty:  1,
					Concept:     "loops",
				},
			},
			Prerequisites: []string{"control_02_loops"},
			XPReward:      25,
			SkillPath:     "control_flow",
		},
		{
			ID:      "strings_01_methods",
			Title:   "String Methods",
			Concept: "Strings have many useful built-in methods for manipulation.\n\nCommon String Methods:\n- .upper(), .lower(): Change case\n- .strip(): Remove whitespace from ends\n- .replace(old, new): Replace substring\n- .split(): Split into list\n- .join(list): Join list into string\n- .startswith(), .endswith(): Check start/end\n- .find(), .count(): Search within string\n\nStrings are immutable - methods return new strings!",
			Examples: []Example{
				{Code: "text = '  Hello World  '\nprint(text.strip())  # 'Hello World'\nprint(text.upper())  # '  HELLO WORLD  '", Explanation: "String methods return new strings"},
				{Code: "words = 'apple,banana,cherry'.split(',')\nprint(len(words))  # 3", Explanation: "Split string into list"},
			},
			Exercises: []CodingExercise{
				{
					ID:     "strings_01_ex1",
					Prompt: "Take the string 'python' and print it in uppercase.",
					TestCases: []TestCase{
						{Input: "", Expected: "PYTHON"},
					},
					Hints: []string{
						"Use the .upper() method",
						"text = 'python'",
						"print(text.upper())",
					},
					Difficulty: 1,
					Concept:    "strings",
				},
			},
			SingleChoice: []SingleChoiceQuestion{
				{
					ID:          "strings_01_mcq1",
					Question:    "What does 'Hello'.lower() return?",
					Choices:     []string{"'HELLO'", "'hello'", "'Hello'", "Error"},
					Correct:     1,
					Explanation: ".lower() converts all characters to lowercase.",
					Difficulty:  1,
					Concept:     "strings",
				},
			},
			OutputDrills: []OutputDrill{
				{
					ID:          "strings_01_drill1",
					Code:        "s = 'hello world'\nprint(s.replace('world', 'python'))",
					Expected:    "hello python",
					Explanation: "Replaces 'world' with 'python' in the string.",
					Difficulty:  1,
					Concept:     "strings",
				},
			},
			Prerequisites: []string{"data_02_dictionaries"},
			XPReward:      25,
			SkillPath:     "basics",
		},
		{
			ID:      "advanced_01_comprehensions",
			Title:   "List Comprehensions",
			Concept: "List comprehensions provide a concise way to create lists.\n\nBasic Syntax:\n[expression for item in iterable]\n\nWith Condition:\n[expression for item in iterable if condition]\n\nExamples:\n- [x*2 for x in range(5)] -> [0, 2, 4, 6, 8]\n- [x for x in range(10) if x % 2 == 0] -> [0, 2, 4, 6, 8]\n\nBenefits:\n- More readable than loops\n- Creates the new list in one line",
			Examples: []Example{
				{Code: "squares = [x*x for x in range(5)]\nprint(squares)  # [0, 1, 4, 9, 16]", Explanation: "Create list of squares"},
				{Code: "nums = [1, 2, 3, 4, 5, 6]\nevens = [n for n in nums if n % 2 == 0]\nprint(evens)  # [2, 4, 6]", Explanation: "Filter even numbers"},
			},
			Exercises: []CodingExercise{
				{
					ID:     "advanced_01_ex1",
					Prompt: "Create a list comprehension that produces [2, 4, 6, 8, 10] and print it.",
					TestCases: []TestCase{
						{Input: "", Expected: "[2, 4, 6, 8, 10]"},
					},
					Hints: []string{
						"Use range(1, 6) for numbers 1-5",
						"Multiply each by 2",
						"[x*2 for x in range(1, 6)]",
					},
					Difficulty: 3,
					Concept:    "comprehensions",
				},
			},
			SingleChoice: []SingleChoiceQuestion{
				{
					ID:          "advanced_01_mcq1",
					Question:    "What does [x for x in range(3)] produce?",
					Choices:     []string{"[1, 2, 3]", "[0, 1, 2]", "[0, 1, 2, 3]", "Error"},
					Correct:     1,
					Explanation: "range(3) produces 0, 1, 2",
					Difficulty:  2,
					Concept:     "comprehensions",
				},
			},
			OutputDrills: []OutputDrill{
				{
					ID:          "advanced_01_drill1",
					Code:        "result = [x*3 for x in [1, 2, 3]]\nprint(result)",
					Expected:    "[3, 6, 9]",
					Explanation: "Multiplies each element by 3.",
					Difficulty:  2,
					Concept:     "comprehensions",
				},
			},
			Prerequisites: []string{"strings_01_methods"},
			XPReward:      35,
			SkillPath:     "advanced",
		},
		{
			ID:      "advanced_02_exceptions",
			Title:   "Error Handling",
			Concept: "Programs fail in predictable ways, and each failure carries a category:\n\nCommon Error Categories:\n- ValueError: Invalid value\n- TypeError: Wrong type\n- ZeroDivisionError: Division by zero\n- KeyError: Dictionary key not found\n- NameError: Variable not defined\n\nReading an error message:\nThe category tells you WHAT went wrong; the message tells you WHERE.\nLearn to read them - they are the fastest path to the fix.",
			Examples: []Example{
				{Code: "x = int('abc')\n# ValueError: 'abc' is not a number", Explanation: "Conversion error"},
				{Code: "result = 10 / 0\n# ZeroDivisionError", Explanation: "Division by zero"},
			},
			SingleChoice: []SingleChoiceQuestion{
				{
					ID:          "advanced_02_mcq1",
					Question:    "What error category does int('abc') raise?",
					Choices:     []string{"TypeError", "ValueError", "KeyError", "NameError"},
					Correct:     1,
					Explanation: "'abc' has the right type (string) but an invalid value for conversion, so it's a ValueError.",
					Difficulty:  2,
					Concept:     "exceptions",
				},
			},
			OutputDrills: []OutputDrill{
				{
					ID:          "advanced_02_drill1",
					Code:        "d = {'a': 1}\nprint(d.get('b', 'missing'))",
					Expected:    "missing",
					Explanation: ".get() with a default avoids a KeyError when the key is absent.",
					Difficulty:  1,
					Concept:     "exceptions",
				},
			},
			Prerequisites: []string{"advanced_01_comprehensions"},
			XPReward:      35,
			SkillPath:     "advanced",
		},
	}
}
