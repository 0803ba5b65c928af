package main

import (
	"encoding/json"
	"fmt"
	"log"
)

// Every command reports its result as indented json on stdout, leaving
// stderr (the log) for progress
func PrintJson(result interface{}) {
	rawjson, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalln("Couldn't serialize result: ", err)
	}
	fmt.Println(string(rawjson))
}
