// Command seasonal serves, renders and exports the seasonal CO2 chart.
package main

import "log"

func main() {
	log.SetFlags(log.Lshortfile | log.Ltime | log.Ldate)
	NewExecutor("seasonal").Main()
}
