package main

import "github.com/NatiMalka/fitness-time/cmd/fitness"

func main() {
	fitness.Execute()
}
