package batch

import (
	"os"
	"path/filepath"
	"strings"
)

// Classic beginner mistakes, one file per category, so a fresh checkout has
// something to analyze.
var errorSamples = map[string]string{
	"syntax_error.py": `
# Syntax error example
def greet(name):
    print("Hello, " + name)
    # Missing colon in if statement
    if name == "Alice"  # Missing colon here
        print("Special greeting!")
`,

	"variable_error.py": `
# Variable error example
def calculate_area():
    # Using undefined variables
    area = length * width  # length and width are not defined
    return area

result = calculate_area()
print(result)
`,

	"type_error.py": `
# Type error example
def add_numbers(a, b):
    return a + b

# Trying to add string and number
result = add_numbers("5", 7)
print(result)
`,

	"index_error.py": `
# Index error example
numbers = [1, 2, 3, 4, 5]

# Trying to access non-existent index
for i in range(10):
    print(numbers[i])
`,

	"logic_error.py": `
# Logic error example
def find_maximum(numbers):
    max_num = 0  # Logic error: what if all numbers are negative?
    for num in numbers:
        if num > max_num:
            max_num = num
    return max_num

# Testing with negative numbers list
negative_numbers = [-5, -2, -8, -1]
result = find_maximum(negative_numbers)
print(f"Maximum: {result}")  # Will incorrectly return 0
`,
}

// WriteSampleErrorFiles creates the sample inputs under dir. Existing files
// are overwritten so the samples stay canonical.
func WriteSampleErrorFiles(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for name, content := range errorSamples {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(strings.TrimSpace(content)+"\n"), 0o644); err != nil {
			return err
		}
	}
	return nil
}
