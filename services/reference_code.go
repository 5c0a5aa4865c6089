package services

import (
	"context"
	"errors"
	"math/rand"
	"strings"

	"hotelbooking/constants"
	apperrors "hotelbooking/errors"
)

// CodeStore giữ không gian mã đặt phòng. Reserve phải là insert-or-reject nguyên tử
// (unique constraint ở storage), trả về ErrCodeDuplicate khi mã đã tồn tại.
type CodeStore interface {
	Reserve(ctx context.Context, code string) error
	Release(ctx context.Context, code string) error
}

// CodeIssuer phát hành mã đặt phòng duy nhất trên toàn hệ thống
type CodeIssuer struct {
	store       CodeStore
	alphabet    string
	length      int
	maxAttempts int
}

// CodeIssuerOptions cấu hình cho CodeIssuer, field bỏ trống sẽ dùng default
type CodeIssuerOptions struct {
	Store       CodeStore
	Alphabet    string
	Length      int
	MaxAttempts int
}

func NewCodeIssuer(opts CodeIssuerOptions) *CodeIssuer {
	g := &CodeIssuer{
		store:       opts.Store,
		alphabet:    opts.Alphabet,
		length:      opts.Length,
		maxAttempts: opts.MaxAttempts,
	}
	if g.alphabet == "" {
		g.alphabet = constants.ReferenceCodeAlphabet
	}
	if g.length <= 0 {
		g.length = constants.ReferenceCodeLength
	}
	if g.maxAttempts <= 0 {
		g.maxAttempts = constants.ReferenceCodeMaxAttempts
	}
	return g
}

// Draw sinh một mã ngẫu nhiên từ alphabet, chưa đảm bảo duy nhất
func (g *CodeIssuer) Draw() string {
	var sb strings.Builder
	sb.Grow(g.length)
	for i := 0; i < g.length; i++ {
		sb.WriteByte(g.alphabet[rand.Intn(len(g.alphabet))])
	}
	return sb.String()
}

// Issue sinh mã mới và giữ chỗ trong store, thử lại với mã mới khi trùng.
// Quá maxAttempts lần trùng liên tiếp trả về ErrCodeSpaceExhausted.
func (g *CodeIssuer) Issue(ctx context.Context) (string, error) {
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		code := g.Draw()
		err := g.store.Reserve(ctx, code)
		if err == nil {
			return code, nil
		}
		if errors.Is(err, apperrors.ErrCodeDuplicate) {
			continue
		}
		return "", err
	}
	return "", apperrors.NewAppError(apperrors.ErrCodeCodeSpaceExhausted,
		"could not find an unused booking reference", apperrors.ErrCodeSpaceUsedUp)
}

// Release trả mã về store khi booking phía sau không được tạo
func (g *CodeIssuer) Release(ctx context.Context, code string) error {
	return g.store.Release(ctx, code)
}
