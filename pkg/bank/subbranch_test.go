package bank

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuerySubbranch(t *testing.T) {
	conn := newTestConn(t)
	seedBank(t, conn)
	ctx := context.Background()

	sb, err := QuerySubbranch(ctx, conn.GetDB(), "downtown")
	require.NoError(t, err)

	assert.Equal(t, "downtown", sb.Name)
	assert.Equal(t, "Springfield", sb.City)
	assert.True(t, sb.Asset.IsZero())
}

func TestQuerySubbranchNotFound(t *testing.T) {
	conn := newTestConn(t)
	seedBank(t, conn)

	_, err := QuerySubbranch(context.Background(), conn.GetDB(), "uptown")

	var nerr *NotFoundError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, "subbranch", nerr.Entity)
}

func TestSetAndGetAsset(t *testing.T) {
	conn := newTestConn(t)
	seedBank(t, conn)
	ctx := context.Background()

	value := decimal.RequireFromString("12345.67")
	require.NoError(t, SetAsset(ctx, conn.GetDB(), "downtown", value))

	got, err := GetAsset(ctx, conn.GetDB(), "downtown")
	require.NoError(t, err)
	assert.True(t, got.Equal(value))
}

func TestSetAssetUnknownSubbranch(t *testing.T) {
	conn := newTestConn(t)
	seedBank(t, conn)

	err := SetAsset(context.Background(), conn.GetDB(), "uptown", decimal.Zero)

	var nerr *NotFoundError
	require.ErrorAs(t, err, &nerr)
}

func TestAdjustAssetExactArithmetic(t *testing.T) {
	conn := newTestConn(t)
	seedBank(t, conn)
	ctx := context.Background()

	// 0.1 + 0.2 must come out as exactly 0.3
	_, err := AdjustAsset(ctx, conn.GetDB(), "downtown", decimal.RequireFromString("0.1"))
	require.NoError(t, err)
	updated, err := AdjustAsset(ctx, conn.GetDB(), "downtown", decimal.RequireFromString("0.2"))
	require.NoError(t, err)

	assert.Equal(t, "0.3", updated.String())

	stored, err := GetAsset(ctx, conn.GetDB(), "downtown")
	require.NoError(t, err)
	assert.Equal(t, "0.3", stored.String())
}

func TestAdjustAssetNegativeDelta(t *testing.T) {
	conn := newTestConn(t)
	seedBank(t, conn)
	ctx := context.Background()

	require.NoError(t, SetAsset(ctx, conn.GetDB(), "downtown", decimal.RequireFromString("500")))

	updated, err := AdjustAsset(ctx, conn.GetDB(), "downtown", decimal.RequireFromString("-120.25"))
	require.NoError(t, err)
	assert.Equal(t, "379.75", updated.String())
}
