/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package serrors

import (
	"errors"
	"strings"
	"testing"

	"dirpx.dev/serrors/opctx"
	"dirpx.dev/serrors/reason"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwe(t *testing.T) {
	e := Owe(errors.New("disk full"), orderStorageFull)
	require.NotNil(t, e)
	assert.Equal(t, orderStorageFull, e.Reason())
	assert.Equal(t, "disk full", e.Detail())
}

func TestOweNilInNilOut(t *testing.T) {
	assert.Nil(t, Owe(nil, orderStorageFull))
	assert.Nil(t, OweSys[reason.Universal](nil))
	assert.Nil(t, With[orderReason](nil, opctx.Want("op")))
}

func TestOweSuccessPathDoesNotAllocate(t *testing.T) {
	ctx := opctx.Want("op")
	allocs := testing.AllocsPerRun(100, func() {
		if e := With(OweSys[reason.Universal](nil), ctx); e != nil {
			t.Fatal("expected nil")
		}
	})
	assert.Zero(t, allocs, "nil path must be free")
}

func TestOweShortcutsClassify(t *testing.T) {
	src := errors.New("underlying cause")

	tests := []struct {
		name string
		conv func(error) *Error[reason.Universal]
		kind reason.Kind
		code int
	}{
		{"validation", OweValidation[reason.Universal], reason.KindValidation, 100},
		{"biz", OweBiz[reason.Universal], reason.KindBusiness, 101},
		{"not_found", OweNotFound[reason.Universal], reason.KindNotFound, 102},
		{"permission", OwePermission[reason.Universal], reason.KindPermission, 103},
		{"logic", OweLogic[reason.Universal], reason.KindLogic, 104},
		{"data", OweData[reason.Universal], reason.KindData, 200},
		{"sys", OweSys[reason.Universal], reason.KindSystem, 201},
		{"net", OweNet[reason.Universal], reason.KindNetwork, 202},
		{"resource", OweResource[reason.Universal], reason.KindResource, 203},
		{"timeout", OweTimeout[reason.Universal], reason.KindTimeout, 204},
		{"config", OweConfig[reason.Universal], reason.KindConfig, 300},
		{"external", OweExternal[reason.Universal], reason.KindExternal, 301},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := tt.conv(src)
			require.NotNil(t, e)
			assert.Equal(t, tt.kind, e.Reason().Kind())
			assert.Equal(t, tt.code, e.ErrorCode())
			assert.Equal(t, "underlying cause", e.Detail())
			assert.Empty(t, e.Reason().Message(), "message lives in detail only")
		})
	}
}

func TestOweMessageAppearsOnce(t *testing.T) {
	// The source message must show up exactly once in the rendering,
	// in the detail line — never duplicated into the reason payload.
	e := OweSys[reason.Universal](errors.New("socket: too many open files"))

	rendered := e.Error()
	assert.Equal(t, 1, strings.Count(rendered, "too many open files"))
	assert.Contains(t, rendered, "[201] system error\n")
}

func TestOweConfigUsesCoreSubReason(t *testing.T) {
	e := OweConfig[reason.Universal](errors.New("missing key"))
	assert.Equal(t, reason.ConfCore, e.Reason().Conf())
	assert.Contains(t, e.Error(), "config error << core config")
}

func TestOweShortcutsMintDomainReasons(t *testing.T) {
	// Domain types with the FromUniversal capability get classified
	// directly, no intermediate Universal error value.
	e := OweTimeout[orderReason](errors.New("slow backend"))
	require.NotNil(t, e)
	assert.Equal(t, reason.KindTimeout, e.Reason().u.Kind())
	assert.Equal(t, "slow backend", e.Detail())
}

func TestWithAppendsFrame(t *testing.T) {
	ctx := opctx.Want("charge_card")
	ctx.Record("amount", 100)

	e := With(Owe(errors.New("declined"), orderStorageFull), ctx)
	require.NotNil(t, e)
	require.Len(t, e.Frames(), 1)
	assert.Equal(t, "charge_card", e.Frames()[0].Target())
}

func TestConvert(t *testing.T) {
	ctx := opctx.Want("inner_op")
	src := New(reason.NotFound("order 42")).
		WithDetail("sql: no rows").
		WithPosition("store.go:5").
		WithFrame(ctx)

	dst := Convert(src, func(u reason.Universal) orderReason {
		return orderReason{name: "missing order"}
	})
	require.NotNil(t, dst)
	assert.Equal(t, "missing order", dst.Reason().name)
	assert.Equal(t, "sql: no rows", dst.Detail())
	assert.Equal(t, "store.go:5", dst.Position())
	require.Len(t, dst.Frames(), 1)
	assert.Equal(t, "inner_op", dst.Frames()[0].Target())
}

func TestConvertNilInNilOut(t *testing.T) {
	assert.Nil(t, Convert[reason.Universal, orderReason](nil, nil))
}

func TestConvertSharedFramesStayIsolated(t *testing.T) {
	src := New(reason.System("oom")).WithFrame(opctx.Want("base"))
	dst := ConvertUniversal[orderReason](src)

	// Appending on either side must not become visible on the other.
	src2 := src.WithFrame(opctx.Want("src_only"))
	dst2 := dst.WithFrame(opctx.Want("dst_only"))

	assert.Len(t, src.Frames(), 1)
	assert.Len(t, dst.Frames(), 1)
	assert.Equal(t, "src_only", src2.Frames()[1].Target())
	assert.Equal(t, "dst_only", dst2.Frames()[1].Target())
}

func TestConvertUniversal(t *testing.T) {
	src := OweNet[reason.Universal](errors.New("connection refused"))
	dst := ConvertUniversal[orderReason](src)

	require.NotNil(t, dst)
	assert.Equal(t, reason.KindNetwork, dst.Reason().u.Kind())
	assert.Equal(t, "connection refused", dst.Detail())

	assert.Nil(t, ConvertUniversal[orderReason](nil))
}

// TestPropagationAcrossLayers exercises the full flow: a low-level
// failure is lifted at the origin, each layer stamps its own context,
// and the top layer re-types into its domain.
func TestPropagationAcrossLayers(t *testing.T) {
	// Layer 1: storage fails, error enters the structured model.
	storageErr := func() *Error[reason.Universal] {
		ctx := opctx.Want("query_orders")
		ctx.Record("table", "orders")
		return With(OweSys[reason.Universal](errors.New("disk I/O error")), ctx)
	}()

	// Layer 2: service wraps with its own operation context.
	serviceErr := func(e *Error[reason.Universal]) *Error[reason.Universal] {
		ctx := opctx.Want("list_user_orders")
		ctx.Record("user", "u-7")
		return With(e, ctx)
	}(storageErr)

	// Layer 3: API boundary re-types into the API's domain reasons.
	apiErr := ConvertUniversal[orderReason](serviceErr)

	require.NotNil(t, apiErr)
	frames := apiErr.Frames()
	require.Len(t, frames, 2)
	assert.Equal(t, "query_orders", frames[0].Target(), "innermost frame first")
	assert.Equal(t, "list_user_orders", frames[1].Target())
	assert.Equal(t, "disk I/O error", apiErr.Detail())

	rendered := apiErr.Error()
	assert.Contains(t, rendered, "1. target: query_orders")
	assert.Contains(t, rendered, "2. target: list_user_orders")
	assert.Less(t, strings.Index(rendered, "query_orders"), strings.Index(rendered, "list_user_orders"))
}

func BenchmarkOwe_NilPath(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Owe[reason.Universal](nil, reason.Of(reason.KindSystem))
	}
}

func BenchmarkOwe_Wrap(b *testing.B) {
	cause := errors.New("disk I/O error")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = OweSys[reason.Universal](cause)
	}
}

func BenchmarkWith_Frame(b *testing.B) {
	ctx := opctx.Want("query_orders")
	ctx.Record("user", "u-7")
	base := OweData[reason.Universal](errors.New("row decode failed"))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = With(base, ctx)
	}
}
