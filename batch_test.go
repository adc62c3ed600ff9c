package cid

import (
	"bytes"
	"context"
	stderrors "errors"
	"reflect"
	"strings"
	"testing"

	ciderrors "github.com/tkarna/cid/errors"
)

func TestBatchMatchesCompute(t *testing.T) {
	rng := newTestRNG(t)
	inputs := map[string][]byte{
		"ordered": bytes.Repeat([]byte("acgt"), 50),
		"uniform": bytes.Repeat([]byte("z"), 80),
		"random":  randomText(rng, 200, 256),
		"tiny":    {1},
	}

	got, err := Batch(context.Background(), inputs, WithWorkers(2))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(inputs) {
		t.Fatalf("got %d results, want %d", len(got), len(inputs))
	}
	for name, data := range inputs {
		want, err := Compute(data)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got[name], want) {
			t.Fatalf("%s: batch result differs from Compute:\n%+v\n%+v", name, got[name], want)
		}
	}
}

func TestBatchNoInputs(t *testing.T) {
	if _, err := Batch(context.Background(), nil); !stderrors.Is(err, ciderrors.ErrNoInputs) {
		t.Fatalf("err = %v, want ErrNoInputs", err)
	}
}

func TestBatchPropagatesFailure(t *testing.T) {
	inputs := map[string][]byte{
		"good": []byte("abcabc"),
		"bad":  {},
	}
	res, err := Batch(context.Background(), inputs)
	if !stderrors.Is(err, ciderrors.ErrEmptyInput) {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}
	if !strings.Contains(err.Error(), "bad") {
		t.Fatalf("err = %v, want the failing input named", err)
	}
	if res != nil {
		t.Fatalf("partial results returned on failure: %v", res)
	}
}

func TestBatchCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Batch(ctx, map[string][]byte{"a": []byte("abc")})
	if err == nil {
		t.Fatal("cancelled context produced no error")
	}
}
