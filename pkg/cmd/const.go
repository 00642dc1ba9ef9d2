package cmd

const (
	RootCmdName  = "carfinder"
	RootCmdShort = "Car finder questionnaire and listing search"
	RootCmdLong  = `carfinder recommends cars from a short questionnaire and searches
classifieds listings by make, model, price, year, fuel, transmission and body.`

	ServeCmdName  = "serve"
	ServeCmdShort = "Start the HTTP API"
	ServeCmdLong  = `Start the HTTP API serving the questionnaire, recommendations,
listing search and saved searches.`

	QuizCmdName  = "quiz"
	QuizCmdShort = "Answer the questionnaire in the terminal"
	QuizCmdLong  = `Walk through the car finder questionnaire interactively and print
the best matching cars of the chosen market.`
)
