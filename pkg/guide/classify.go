package guide

import "strings"

// maxSimpleStepCount is the highest number of <Step occurrences a
// simple connect guide may contain. The substring also matches an
// opening <Steps> tag, so a guide with a <Steps> block and three
// <Step> items counts as four and is not simple.
const maxSimpleStepCount = 3

// simpleFlowPhrases mark the one-click connect flow that needs no
// provider-side configuration.
var simpleFlowPhrases = []string{
	"Click Connect Account",
	"In the modal, click the Connect button",
	"Click the Connect button",
}

// authKeywords indicate the guide walks through credential setup, which
// always requires the full template.
var authKeywords = []string{
	"API Key",
	"Client ID",
	"Client Secret",
	"OAuth",
	"Token",
	"Credentials",
}

// IsSimpleConnect reports whether the guide documents a simple connect
// flow and is exempt from the compliance template. A guide qualifies
// when it has at most maxSimpleStepCount steps, contains a simple-flow
// phrase, and mentions no authentication keyword.
func (d *Document) IsSimpleConnect() bool {
	if strings.Count(d.Content, "<Step") > maxSimpleStepCount {
		return false
	}

	hasSimpleFlow := false
	for _, phrase := range simpleFlowPhrases {
		if strings.Contains(d.Content, phrase) {
			hasSimpleFlow = true
			break
		}
	}
	if !hasSimpleFlow {
		return false
	}

	for _, keyword := range authKeywords {
		if strings.Contains(d.Content, keyword) {
			return false
		}
	}
	return true
}
