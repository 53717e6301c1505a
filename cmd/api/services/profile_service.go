package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"social-gateway/cmd/api/clients/twitterclient"
)

// UserLookup 은 외부 API 의 username 기반 사용자 조회 기능이다.
// *twitterclient.Client 가 구현하며, 테스트에서는 가짜 구현으로 대체한다.
type UserLookup interface {
	LookupUserByUsername(ctx context.Context, username string, fields []string) (twitterclient.User, error)
}

// Profile 은 게이트웨이가 반환하는 정규화된 공개 프로필이다.
type Profile struct {
	Username    string
	Name        string
	AvatarURL   string
	Description string
}

type ProfileOptions struct {
	// UserFields 는 외부 API 에 요청할 선택 필드 목록이다.
	UserFields []string
	Avatar     AvatarPolicy
}

type ProfileService struct {
	lookup UserLookup
	opts   ProfileOptions
}

func NewProfileService(lookup UserLookup, opts ProfileOptions) *ProfileService {
	return &ProfileService{
		lookup: lookup,
		opts:   opts,
	}
}

// GetProfile 은 username 으로 외부 API 를 한 번 호출해 Profile 로 변환한다.
// 반환 에러는 ErrProfileNotFound 또는 ErrUpstreamFailure 중 하나를 wrap 한다.
func (s *ProfileService) GetProfile(ctx context.Context, username string) (Profile, error) {
	if strings.TrimSpace(username) == "" {
		return Profile{}, ErrProfileNotFound
	}

	user, err := s.lookup.LookupUserByUsername(ctx, username, s.opts.UserFields)
	if err != nil {
		if errors.Is(err, twitterclient.ErrNotFound) {
			return Profile{}, fmt.Errorf("%w: %w", ErrProfileNotFound, err)
		}
		return Profile{}, fmt.Errorf("%w: %w", ErrUpstreamFailure, err)
	}

	return Profile{
		Username:    user.Username,
		Name:        user.Name,
		AvatarURL:   AvatarURL(user.ProfileImageURL, s.opts.Avatar),
		Description: user.Description,
	}, nil
}
