package wargaming

import (
	"errors"
	"testing"

	"github.com/antonholmquist/jason"
)

func TestExtractResponse(t *testing.T) {
	var errtests = []struct {
		jsonInput []byte
		want      *APIError // nil means no error expected
	}{
		{
			[]byte(`{"status":"error","error":{"code":402,"message":"SEARCH_NOT_SPECIFIED","field":"search","value":null}}`),
			&APIError{Code: 402, Message: "SEARCH_NOT_SPECIFIED", Field: "search"},
		},
		{
			[]byte(`{"status":"error","error":{"code":407,"message":"INVALID_APPLICATION_ID","field":"application_id","value":"demo"}}`),
			&APIError{Code: 407, Message: "INVALID_APPLICATION_ID", Field: "application_id", Value: "demo"},
		},
		{
			[]byte(`{"status":"error","error":{"code":404,"message":"METHOD_NOT_FOUND","field":null,"value":null}}`),
			&APIError{Code: 404, Message: "METHOD_NOT_FOUND"},
		},
		{
			[]byte(`{"status":"ok","data":{"1":{"nickname":"x"}}}`),
			nil,
		},
		{
			[]byte(`{"status":"ok","meta":{"count":0},"data":[]}`),
			nil,
		},
	}

	for i, errtest := range errtests {
		js, err := jason.NewObjectFromBytes(errtest.jsonInput)
		if err != nil {
			t.Fatalf("Invalid JSON for test %d: %s", i, err)
		}

		_, err = extractResponse(js)
		if errtest.want == nil {
			if err != nil {
				t.Errorf("(test:%d) error returned, expected nil: %v", i, err)
			}
			continue
		}

		var apiErr APIError
		if !errors.As(err, &apiErr) {
			t.Errorf("(test:%d) expected APIError, got %T: %v", i, err, err)
			continue
		}
		if apiErr != *errtest.want {
			t.Errorf("(test:%d) got %+v, want %+v", i, apiErr, *errtest.want)
		}
	}
}

func TestExtractResponseWithoutData(t *testing.T) {
	// A few methods answer without a data field; the whole envelope is
	// handed back in that case.
	js, err := jason.NewObjectFromBytes([]byte(`{"status":"ok","request_id":"abc"}`))
	if err != nil {
		t.Fatal(err)
	}

	data, err := extractResponse(js)
	if err != nil {
		t.Fatalf("extractResponse returned err: %v", err)
	}
	obj, err := data.Object()
	if err != nil {
		t.Fatalf("fallback payload is not an object: %v", err)
	}
	if id, _ := obj.GetString("request_id"); id != "abc" {
		t.Errorf("request_id = %q, want abc", id)
	}
}

func TestExtractResponseMalformedEnvelope(t *testing.T) {
	for _, input := range []string{
		`{"data":{}}`,
		`{"status":"error"}`,
		`{"status":"error","error":{"message":"NO_CODE"}}`,
	} {
		js, err := jason.NewObjectFromBytes([]byte(input))
		if err != nil {
			t.Fatal(err)
		}

		_, err = extractResponse(js)
		if err == nil {
			t.Errorf("no error for malformed envelope %s", input)
			continue
		}
		var apiErr APIError
		if errors.As(err, &apiErr) {
			t.Errorf("malformed envelope %s reported as APIError: %v", input, err)
		}
	}
}

func TestAPIErrorString(t *testing.T) {
	err := APIError{Code: 402, Message: "SEARCH_NOT_SPECIFIED", Field: "search"}
	if got := err.Error(); got != `402 SEARCH_NOT_SPECIFIED (field "search")` {
		t.Errorf("Error() = %q", got)
	}

	err = APIError{Code: 504, Message: "SOURCE_NOT_AVAILABLE"}
	if got := err.Error(); got != "504 SOURCE_NOT_AVAILABLE" {
		t.Errorf("Error() = %q", got)
	}
	if !err.SourceNotAvailable() {
		t.Error("SourceNotAvailable() = false, want true")
	}
}
