package errx_test

import (
	"errors"
	"testing"

	"github.com/jmvelez/portfolio-api/pkg/errx"
)

func TestRegistry_PrefixesCodes(t *testing.T) {
	reg := errx.NewRegistry("TEST")
	code := reg.Register("SOMETHING_BROKE", errx.TypeInternal, 500, "Something broke")

	if code.Code != "TEST_SOMETHING_BROKE" {
		t.Fatalf("code = %q", code.Code)
	}

	err := reg.New(code)
	if err.Message != "Something broke" || err.HTTPStatus != 500 {
		t.Fatalf("unexpected error: %+v", err)
	}
}

func TestNewWithCause_KeepsCauseOutOfMessage(t *testing.T) {
	reg := errx.NewRegistry("TEST")
	code := reg.Register("UPSTREAM", errx.TypeExternal, 500, "Upstream failed")

	cause := errors.New("connection refused to 10.0.0.1:25")
	err := reg.NewWithCause(code, cause)

	if err.Message != "Upstream failed" {
		t.Fatalf("public message changed: %q", err.Message)
	}
	if !errors.Is(err, cause) {
		t.Fatal("cause not reachable through Unwrap")
	}
}

func TestIsCode(t *testing.T) {
	reg := errx.NewRegistry("TEST")
	a := reg.Register("A", errx.TypeValidation, 400, "a")
	b := reg.Register("B", errx.TypeValidation, 400, "b")

	err := reg.New(a)
	if !errx.IsCode(err, a) {
		t.Fatal("IsCode missed a matching code")
	}
	if errx.IsCode(err, b) {
		t.Fatal("IsCode matched the wrong code")
	}
	if errx.IsCode(nil, a) {
		t.Fatal("IsCode matched nil error")
	}
	if errx.IsCode(errors.New("plain"), a) {
		t.Fatal("IsCode matched a plain error")
	}
}

func TestWrap_PreservesExistingCode(t *testing.T) {
	reg := errx.NewRegistry("TEST")
	code := reg.Register("INNER", errx.TypeExternal, 502, "inner")

	inner := reg.New(code)
	wrapped := errx.Wrap(inner, "outer view", errx.TypeInternal)

	if wrapped.Code != "TEST_INNER" {
		t.Fatalf("code = %q, want preserved inner code", wrapped.Code)
	}
	if wrapped.Message != "outer view" {
		t.Fatalf("message = %q", wrapped.Message)
	}
}

func TestTypeStatusMapping(t *testing.T) {
	cases := []struct {
		errType errx.Type
		status  int
	}{
		{errx.TypeValidation, 400},
		{errx.TypeNotFound, 404},
		{errx.TypeRateLimit, 429},
		{errx.TypeExternal, 500},
		{errx.TypeInternal, 500},
	}

	for _, tc := range cases {
		err := errx.New("msg", tc.errType)
		if err.HTTPStatus != tc.status {
			t.Errorf("%s: status = %d, want %d", tc.errType, err.HTTPStatus, tc.status)
		}
	}
}
