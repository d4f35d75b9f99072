package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	Out io.Writer // defaults to os.Stdout
	Err io.Writer // defaults to os.Stderr
}

type identified interface{ GetID() int }

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.Err == nil {
		return os.Stderr
	}
	return f.Err
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	return f.Render(data, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%+v\n", data)
		return err
	})
}

// Render outputs data in the selected mode. Quiet mode prints ids, one per
// line, when data is a record or a slice of records. human renders the
// default view.
func (f *OutputFormatter) Render(data any, human func(w io.Writer) error) error {
	if f.Quiet {
		if ids, ok := idsOf(data); ok {
			for _, id := range ids {
				if _, err := fmt.Fprintf(f.out(), "%d\n", id); err != nil {
					return err
				}
			}
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	return human(f.out())
}

func idsOf(data any) ([]int, bool) {
	if rec, ok := data.(identified); ok {
		return []int{rec.GetID()}, true
	}

	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Slice {
		return nil, false
	}
	ids := make([]int, 0, v.Len())
	for i := range v.Len() {
		rec, ok := v.Index(i).Interface().(identified)
		if !ok {
			return nil, false
		}
		ids = append(ids, rec.GetID())
	}
	return ids, true
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	if _, err := fmt.Fprintf(f.errOut(), "Error: %s\n", message); err != nil {
		return err
	}
	if suggestion != "" {
		_, err := fmt.Fprintf(f.errOut(), "Suggestion: %s\n", suggestion)
		return err
	}
	return nil
}

// Fail reports err to the user and returns it wrapped with its exit code.
func (f *OutputFormatter) Fail(err error, suggestion string) error {
	return f.FailWithCode(ExitCodeFor(err), err, suggestion)
}

// FailWithCode is Fail with an explicit exit code.
func (f *OutputFormatter) FailWithCode(code int, err error, suggestion string) error {
	if fmtErr := f.ErrorWithSuggestion(errorCode(code), err.Error(), suggestion); fmtErr != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error formatting error message: %v\n", fmtErr)
	}
	return &ExitCodeError{Code: code, Err: err}
}
