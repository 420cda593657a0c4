package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crossmart/goapi/base/ctx"
	"github.com/crossmart/goapi/domain"
	"github.com/crossmart/goapi/stores/auth/usecase"
)

func TestSignAndParseToken(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret")
	tkn, err := u.SignToken(ctx, "0xC37C41601bc88C91b6569c701f08D37fa0f565F0")
	assert.NoError(t, err)
	assert.NotEmpty(t, tkn)
	ads, err := u.ParseToken(ctx, tkn)
	assert.NoError(t, err)
	// tokens carry the lower cased address
	assert.Equal(t, "0xc37c41601bc88c91b6569c701f08d37fa0f565f0", ads)
}

func TestSignTokenRejectsBadAddress(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret")
	_, err := u.SignToken(ctx, "not-an-address")
	assert.Equal(t, domain.ErrInvalidAddress, err)
}

func TestParseTokenRejectsForgedToken(t *testing.T) {
	ctx := ctx.Background()
	tkn, err := usecase.New("jwt-secret").SignToken(ctx, "0xc37c41601bc88c91b6569c701f08d37fa0f565f0")
	assert.NoError(t, err)

	_, err = usecase.New("other-secret").ParseToken(ctx, tkn)
	assert.Error(t, err)
}
