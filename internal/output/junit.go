package output

import (
	"encoding/xml"
	"fmt"
	"sort"

	"github.com/leonardomso/figembed/internal/resolve"
)

// JUnitFormatter formats reports as JUnit XML for CI/CD integration.
// Every marker is a test case; invalid markers are failures.
type JUnitFormatter struct{}

type junitTestSuites struct {
	XMLName   xml.Name         `xml:"testsuites"`
	Name      string           `xml:"name,attr"`
	Tests     int              `xml:"tests,attr"`
	Failures  int              `xml:"failures,attr"`
	TestSuite []junitTestSuite `xml:"testsuite"`
}

type junitTestSuite struct {
	Name      string          `xml:"name,attr"`
	Tests     int             `xml:"tests,attr"`
	Failures  int             `xml:"failures,attr"`
	Timestamp string          `xml:"timestamp,attr"`
	TestCases []junitTestCase `xml:"testcase"`
}

type junitTestCase struct {
	Name      string        `xml:"name,attr"`
	ClassName string        `xml:"classname,attr"`
	Failure   *junitFailure `xml:"failure,omitempty"`
}

type junitFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Content string `xml:",chardata"`
}

// Format implements Formatter.
func (*JUnitFormatter) Format(report *Report) ([]byte, error) {
	byFile := map[string][]resolve.Result{}
	for _, r := range report.Results {
		byFile[r.Marker.FilePath] = append(byFile[r.Marker.FilePath], r)
	}

	files := make([]string, 0, len(byFile))
	for f := range byFile {
		files = append(files, f)
	}
	sort.Strings(files)

	suites := junitTestSuites{
		Name:      "figembed",
		TestSuite: make([]junitTestSuite, 0, len(files)),
	}

	for _, f := range files {
		suite := junitTestSuite{
			Name:      f,
			Timestamp: report.GeneratedAt.Format(timestampLayout),
		}
		for _, r := range byFile[f] {
			tc := junitTestCase{
				Name:      fmt.Sprintf("%s (line %d)", r.Marker.Payload, r.Marker.Line),
				ClassName: f,
			}
			if r.IsInvalid() {
				tc.Failure = &junitFailure{
					Message: "invalid embed marker",
					Type:    r.Status.String(),
					Content: fmt.Sprintf("%s:%d:%d: %s\n%s",
						f, r.Marker.Line, r.Marker.Column, r.Marker.Payload, r.Status.Description()),
				}
				suite.Failures++
			}
			suite.TestCases = append(suite.TestCases, tc)
		}
		suite.Tests = len(suite.TestCases)

		suites.Tests += suite.Tests
		suites.Failures += suite.Failures
		suites.TestSuite = append(suites.TestSuite, suite)
	}

	data, err := xml.MarshalIndent(suites, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), data...), nil
}
