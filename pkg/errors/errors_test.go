package errors

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestWeftErrorString(t *testing.T) {
	err := &WeftError{
		Op:   "core.commitPlacement",
		Kind: KindCommit,
		Err:  fmt.Errorf("no host-bearing ancestor"),
	}
	got := err.Error()
	if got == "" {
		t.Error("expected non-empty error string")
	}
}

func TestWeftErrorWithFiber(t *testing.T) {
	err := &WeftError{
		Op:    "core.commitUpdate",
		Kind:  KindInternal,
		Fiber: "div",
		Err:   fmt.Errorf("update without alternate"),
	}
	got := err.Error()
	want := "fiber=div"
	if !strings.Contains(got, want) {
		t.Errorf("error string %q should contain %q", got, want)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindElement, "element"},
		{KindHook, "hook"},
		{KindRender, "render"},
		{KindCommit, "commit"},
		{KindInternal, "internal"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestHookErrorString(t *testing.T) {
	err := &HookError{Op: "core.UseState"}
	want := "core.UseState called outside component render"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestRenderErrorString(t *testing.T) {
	err := &RenderError{
		Component: "Counter",
		Recovered: "boom",
	}
	got := err.Error()
	if !strings.Contains(got, "Counter") || !strings.Contains(got, "boom") {
		t.Errorf("unexpected error string %q", got)
	}
}

type captureHandler struct {
	errors  []*WeftError
	panics  []*PanicError
	renders []*RenderError
}

func (h *captureHandler) HandleError(err *WeftError)        { h.errors = append(h.errors, err) }
func (h *captureHandler) HandlePanic(err *PanicError)       { h.panics = append(h.panics, err) }
func (h *captureHandler) HandleRenderError(err *RenderError) {
	h.renders = append(h.renders, err)
}

func TestReportSetsTimestamp(t *testing.T) {
	handler := &captureHandler{}
	SetHandler(handler)
	defer SetHandler(nil)

	Report(&WeftError{Op: "test.op", Kind: KindElement, Err: fmt.Errorf("bad child")})

	if len(handler.errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(handler.errors))
	}
	if handler.errors[0].Timestamp.IsZero() {
		t.Error("expected Report to set Timestamp")
	}
}

func TestReportNilIsNoop(t *testing.T) {
	handler := &captureHandler{}
	SetHandler(handler)
	defer SetHandler(nil)

	Report(nil)
	ReportPanic(nil)
	ReportRenderError(nil)

	if len(handler.errors)+len(handler.panics)+len(handler.renders) != 0 {
		t.Error("nil reports should not reach the handler")
	}
}

func TestRecover(t *testing.T) {
	handler := &captureHandler{}
	SetHandler(handler)
	defer SetHandler(nil)

	func() {
		defer Recover("test.recover")
		panic("recovered panic")
	}()

	if len(handler.panics) != 1 {
		t.Fatalf("expected 1 panic report, got %d", len(handler.panics))
	}
	p := handler.panics[0]
	if p.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", p.Op, "test.recover")
	}
	if p.Value != "recovered panic" {
		t.Errorf("Value = %v, want %q", p.Value, "recovered panic")
	}
	if p.StackTrace == "" {
		t.Error("expected a captured stack trace")
	}
	if p.Timestamp.IsZero() || time.Since(p.Timestamp) < 0 {
		t.Error("expected a recent timestamp")
	}
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	SetHandler(&captureHandler{})
	SetHandler(nil)
	if _, ok := getHandler().(*LogHandler); !ok {
		t.Errorf("expected default LogHandler, got %T", getHandler())
	}
}
