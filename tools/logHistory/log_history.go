package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/notargets/shocktube/validation"
)

var (
	logFile string
)

// Prints the integrated error of every run and quantity across all sessions of a record log
func main() {
	logFilePtr := flag.String("logFile", "diffs.log", "record log appended to by shocktube check")
	flag.Parse()
	logFile = *logFilePtr
	if len(logFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Input file: %v\n", logFile)
	sessions, err := validation.ReadHistoryFile(logFile)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Printf("Sessions = %d\n", len(sessions))
	for _, tr := range validation.Trends(sessions) {
		fmt.Printf("Run = %s, Quantity = %s\n", tr.Run, tr.Quantity)
		for i := range tr.Errors {
			fmt.Printf("%s, %v\n", tr.Times[i].Format(validation.TimeLayout), tr.Errors[i])
		}
	}
}
