package main

const (
	plasmidSheet   = "Plasmids"
	operationSheet = "Operations"
	statusSheet    = "Status"

	statusPass = "PASS"
	statusFail = "FAIL"
)

var (
	StatusTitle = []string{
		"ID",
		"Plasmid",
		"Type",
		"Span",
		"Status",
		"Title",
		"Primers",
		"MeanLength",
		"HomologyTm",
		"Message",
	}

	// TypeAlias extra Type values of the Operations sheet
	TypeAlias = map[string]string{
		"ins":             "Insertion",
		"del":             "Deletion",
		"mut":             "Mutation",
		"sub":             "Subcloning",
		"fragment":        fragmentType,
		"linear fragment": fragmentType,
	}
)

const fragmentType = "Fragment"
