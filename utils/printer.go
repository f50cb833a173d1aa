package utils

import (
	"encoding/json"
	"fmt"
)

// PrettyPrint prints a value as indented JSON, for CLI summaries.
func PrettyPrint(input any) {
	bytes, err := json.MarshalIndent(input, "", "    ")
	if err != nil {
		fmt.Printf("%+v\n", input)
		return
	}
	fmt.Println(string(bytes))
}
