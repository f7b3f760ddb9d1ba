package strengthcheck

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-passfield/pkg/indicator"
	"github.com/goliatone/go-passfield/pkg/strength"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

var (
	errMissingPassword = StatusError{Code: http.StatusBadRequest, Err: errors.New("strengthcheck: missing password")}
	errMalformedBody   = StatusError{Code: http.StatusBadRequest, Err: errors.New("strengthcheck: malformed body")}
	errBodyTooLarge    = StatusError{Code: http.StatusRequestEntityTooLarge, Err: errors.New("strengthcheck: body too large")}
)

// Result is the payload returned for a classified password.
type Result struct {
	Strength strength.Strength                         `json:"strength"`
	Label    string                                    `json:"label"`
	Level    int                                       `json:"level"`
	Length   int                                       `json:"length"`
	Classes  []string                                  `json:"classes"`
	Segments [indicator.SegmentCount]indicator.Segment `json:"segments"`
}

type resultResponse struct {
	Data Result `json:"data"`
}

// Evaluate classifies password with the configured classifier and indicator.
func Evaluate(password string, opts Options) Result {
	eval := opts.Classifier.Evaluate(password)
	state := opts.Indicator.State(eval.Strength)
	return Result{
		Strength: eval.Strength,
		Label:    state.Label,
		Level:    eval.Strength.Level(),
		Length:   eval.Length,
		Classes:  eval.Classes.Names(),
		Segments: state.Segments,
	}
}

// Handler builds a net/http handler with default options plus any overrides.
// It is an alias of NewHandler to match the recommended component API surface.
func Handler(fns ...OptionFn) http.Handler {
	return NewHandler(fns...)
}

func NewHandler(fns ...OptionFn) http.Handler {
	opts := NewOptions(fns...)
	return HandlerWithOptions(opts)
}

// HandlerWithOptions builds a net/http handler from a pre-constructed Options value.
// Defaults are re-applied so a zero Options value is usable.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		requestID := strings.TrimSpace(r.Header.Get(RequestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)
		w.Header().Set("Cache-Control", "no-store")
		log := opts.Logger.With("request_id", requestID)
		ctx := r.Context()

		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				log.Warn(ctx, "strength request rejected by guard", "error", err)
				observeRejected(opts, "guard")
				writeGuardError(w, err)
				return
			}
		}

		password, err := readPassword(w, r, opts)
		if err != nil {
			code := http.StatusBadRequest
			var httpErr HTTPError
			if errors.As(err, &httpErr) {
				code = httpErr.StatusCode()
			}
			log.Warn(ctx, "strength request rejected", "status", code, "error", err)
			observeRejected(opts, rejectReason(code))
			http.Error(w, http.StatusText(code), code)
			return
		}

		result := Evaluate(password, opts)
		if opts.Recorder != nil {
			opts.Recorder.ObserveClassification(result.Strength)
		}
		log.Debug(ctx, "password classified", "strength", result.Strength.String())

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)

		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(true)
		_ = enc.Encode(resultResponse{Data: result})
	})
}

func readPassword(w http.ResponseWriter, r *http.Request, opts Options) (string, error) {
	if r.Body == nil {
		return "", errMissingPassword
	}
	r.Body = http.MaxBytesReader(w, r.Body, opts.MaxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" || strings.HasSuffix(mediaType, "+json") {
		return readJSONPassword(r, opts.Param)
	}

	var err error
	if mediaType == "multipart/form-data" {
		err = r.ParseMultipartForm(opts.MaxBodyBytes)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		return "", classifyBodyError(err)
	}
	values, ok := r.PostForm[opts.Param]
	if !ok || len(values) == 0 {
		return "", errMissingPassword
	}
	return values[0], nil
}

func readJSONPassword(r *http.Request, param string) (string, error) {
	var payload map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return "", classifyBodyError(err)
	}
	raw, ok := payload[param]
	if !ok {
		return "", errMissingPassword
	}
	var password string
	if err := json.Unmarshal(raw, &password); err != nil {
		return "", StatusError{Code: http.StatusBadRequest, Err: fmt.Errorf("strengthcheck: %s must be a string", param)}
	}
	return password, nil
}

func classifyBodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return errBodyTooLarge
	}
	return StatusError{Code: errMalformedBody.Code, Err: fmt.Errorf("%w: %v", errMalformedBody.Err, err)}
}

func rejectReason(code int) string {
	switch code {
	case http.StatusRequestEntityTooLarge:
		return "too_large"
	case http.StatusBadRequest:
		return "bad_request"
	default:
		return "other"
	}
}

func observeRejected(opts Options, reason string) {
	if opts.Recorder != nil {
		opts.Recorder.ObserveRejected(reason)
	}
}

func writeGuardError(w http.ResponseWriter, err error) {
	if w == nil {
		return
	}
	if err == nil {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	http.Error(w, http.StatusText(code), code)
}
