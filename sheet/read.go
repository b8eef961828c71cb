package sheet

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"
)

// FetchError wraps a remote read failure with the spreadsheet and worksheet
// that caused it.
type FetchError struct {
	Spreadsheet string
	Worksheet   string
	Err         error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("unable to retrieve '%s' from spreadsheet %s (%v)", e.Worksheet, e.Spreadsheet, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Fetch retrieves a whole worksheet and builds the header-indexed table from
// it. The read is not retried - remote failures are surfaced to the caller.
func Fetch(ctx context.Context, google *sheets.Service, spreadsheet, worksheet string) (*Table, error) {
	response, err := google.Spreadsheets.Values.Get(spreadsheet, worksheet).Context(ctx).Do()
	if err != nil {
		return nil, &FetchError{Spreadsheet: spreadsheet, Worksheet: worksheet, Err: err}
	}

	if len(response.Values) == 0 {
		return nil, &FetchError{Spreadsheet: spreadsheet, Worksheet: worksheet, Err: fmt.Errorf("no data in worksheet")}
	}

	table, err := MakeTable(response)
	if err != nil {
		return nil, &FetchError{Spreadsheet: spreadsheet, Worksheet: worksheet, Err: err}
	}

	return table, nil
}
