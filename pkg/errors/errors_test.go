package errors

import (
	"bytes"
	goerrors "errors"
	"strings"
	"testing"
	"time"
)

func TestNavErrorString(t *testing.T) {
	err := &NavError{
		Op:   "focus.Navigator.UpdateFocusable",
		Kind: KindRegistry,
		Err:  ErrUnknownKey,
	}
	got := err.Error()
	want := "focus.Navigator.UpdateFocusable [registry]: focus key not registered"
	if got != want {
		t.Errorf("NavError.Error() = %q, want %q", got, want)
	}
}

func TestNavErrorWithFocusKey(t *testing.T) {
	err := &NavError{
		Op:       "focus.Navigator.AddFocusable",
		Kind:     KindRegistry,
		FocusKey: "menu",
		Err:      ErrDuplicateKey,
	}
	got := err.Error()
	want := "focusKey=menu"
	if !strings.Contains(got, want) {
		t.Errorf("error string %q should contain %q", got, want)
	}
	if !goerrors.Is(err, ErrDuplicateKey) {
		t.Error("expected errors.Is to match ErrDuplicateKey through Unwrap")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindRegistry, "registry"},
		{KindConfig, "config"},
		{KindPanic, "panic"},
		{ErrorKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *PanicError
		want string
	}{
		{"without op", &PanicError{Value: "test panic"}, "panic: test panic"},
		{"with op", &PanicError{Op: "cmd.replay", Value: "test panic"}, "panic in cmd.replay: test panic"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("%s: PanicError.Error() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestReport(t *testing.T) {
	var captured *NavError
	handler := &testHandler{
		onError: func(err *NavError) {
			captured = err
		},
	}

	old := SetHandler(handler)
	defer SetHandler(old)

	Report(&NavError{
		Op:   "test.op",
		Kind: KindConfig,
		Err:  goerrors.New("bad scene"),
	})
	Report(nil)

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			captured = err
		},
	}

	old := SetHandler(handler)
	defer SetHandler(old)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
	if captured.StackTrace == "" {
		t.Error("expected a stack trace")
	}
}

func TestRecoverWithCallback(t *testing.T) {
	old := SetHandler(&testHandler{})
	defer SetHandler(old)

	var got any
	func() {
		defer RecoverWithCallback("test.callback", func(r any) { got = r })
		panic(42)
	}()

	if got != 42 {
		t.Errorf("callback value = %v, want 42", got)
	}
}

func TestSetHandlerNil(t *testing.T) {
	old := SetHandler(nil)
	defer SetHandler(old)

	if _, ok := getHandler().(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", getHandler())
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}

	h.HandleError(&NavError{Op: "focus.Navigator.AddFocusable", Kind: KindRegistry, FocusKey: "a", Err: ErrDuplicateKey})
	h.HandleError(nil)
	if got, want := buf.String(), "[spatialnav error] focus.Navigator.AddFocusable: focus key already registered\n"; got != want {
		t.Errorf("quiet output = %q, want %q", got, want)
	}

	buf.Reset()
	h.Verbose = true
	h.HandleError(&NavError{Op: "op", Kind: KindRegistry, FocusKey: "a", Err: ErrDuplicateKey, StackTrace: "frames"})
	for _, want := range []string{"[registry]", "focusKey=a", "Stack trace:\nframes"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("verbose output %q should contain %q", buf.String(), want)
		}
	}

	buf.Reset()
	h.HandlePanic(&PanicError{Op: "cmd.replay", Value: "boom", Timestamp: time.Now()})
	if !strings.HasPrefix(buf.String(), "[spatialnav panic] cmd.replay: boom\n") {
		t.Errorf("panic output = %q", buf.String())
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Error("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

type testHandler struct {
	onError func(*NavError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *NavError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
