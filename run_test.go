// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package st_test

import (
	"errors"
	"strings"
	"testing"

	"code.hybscloud.com/st"
)

func TestRunIsolatedInvocations(t *testing.T) {
	// The same ST value run twice allocates per session: the counter
	// starts over, so neither run observes the other's mutations.
	comp := st.Bind(st.NewRef(0), func(r *st.Ref[int]) st.ST[int] {
		return st.Then(r.Modify(func(x int) int { return x + 1 }), r.Read())
	})

	first, err := st.Run(comp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := st.Run(comp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != 1 || second != 1 {
		t.Fatalf("got (%d, %d), want (1, 1)", first, second)
	}
}

func TestRunReferentialTransparency(t *testing.T) {
	// Structurally equivalent computations yield equal results and no
	// observable effect outside either call.
	build := func() st.ST[int] {
		return st.Bind(st.NewArr(3, 1), func(a *st.Arr[int]) st.ST[int] {
			return st.Then(a.Update(func(x, y int) int { return x + y }, 0, 2), a.Read(0))
		})
	}

	x, err := st.Run(build())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	y, err := st.Run(build())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if x != y {
		t.Fatalf("got %d and %d from equivalent computations", x, y)
	}
}

func TestRunCrossScopeHandle(t *testing.T) {
	// No value tagged by one invocation's scope can be used in another.
	leak := make(chan *st.Ref[int], 1)
	if _, err := st.Run(st.Bind(st.NewRef(123), func(r *st.Ref[int]) st.ST[int] {
		leak <- r
		return r.Read()
	})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	smuggled := <-leak
	_, err := st.Run(st.Bind(st.NewRef(0), func(*st.Ref[int]) st.ST[int] {
		return smuggled.Read()
	}))
	if !errors.Is(err, st.ErrScopeMismatch) {
		t.Fatalf("got %v, want ErrScopeMismatch", err)
	}
}

func TestMustRun(t *testing.T) {
	got := st.MustRun(st.Return("ok"))
	if got != "ok" {
		t.Fatalf("got %q, want %q", got, "ok")
	}
}

func TestMustRunPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustRun did not panic")
		}
		msg, ok := r.(string)
		if !ok || !strings.HasPrefix(msg, "st: MustRun") {
			t.Fatalf("got panic %v, want st: MustRun prefix", r)
		}
	}()
	st.MustRun(st.Fail[int](errors.New("boom")))
}
