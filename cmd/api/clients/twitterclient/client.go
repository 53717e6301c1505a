package twitterclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"social-gateway/cmd/api/httpclient"
)

// Client는 Twitter API v2 의 사용자 조회 엔드포인트를 호출하는 얇은 클라이언트다.
//
// baseURL 예: https://api.twitter.com/2
type Client struct {
	base        *httpclient.BaseClient
	bearerToken string
}

var (
	// ErrNotFound 는 응답이 2xx 이지만 data 가 비어 있는 경우(존재하지 않는 계정 등)나
	// 조회할 수 없는 username 일 때 반환된다.
	ErrNotFound = errors.New("twitter user not found")
	// ErrMissingBearerToken 은 토큰 없이 호출하려 할 때 요청을 보내기 전에 반환된다.
	ErrMissingBearerToken = errors.New("twitter bearer token is empty")
)

const DefaultBaseURL = "https://api.twitter.com/2"

type Options struct {
	BaseURL     string
	BearerToken string
	Timeout     time.Duration
	// Transport 는 테스트 등에서 아웃바운드 전송 계층을 교체할 때 사용한다.
	Transport http.RoundTripper
}

func New(opts Options) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := httpclient.New(httpclient.Config{
		Timeout:   opts.Timeout,
		Transport: opts.Transport,
	})
	return &Client{
		base:        httpclient.NewBaseClientWithClient(httpClient, baseURL),
		bearerToken: opts.BearerToken,
	}
}

// -------------------- DTOs --------------------

// User 는 GET /users/by/username/{username} 응답의 data 객체다.
type User struct {
	ID              string `json:"id"`
	Username        string `json:"username"`
	Name            string `json:"name"`
	ProfileImageURL string `json:"profile_image_url"`
	Description     string `json:"description"`
}

// APIError 는 Twitter v2 응답의 errors 배열 원소다.
// 존재하지 않는 계정은 200 응답에 data 없이 errors 만 담겨 온다.
type APIError struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Type   string `json:"type"`
}

type UserResponse struct {
	Data   *User      `json:"data"`
	Errors []APIError `json:"errors,omitempty"`
}

// -------------------- Methods --------------------

// LookupUserByUsername 은 GET /users/by/username/{username}?user.fields=... 를 호출한다.
// fields 가 비어 있으면 user.fields 쿼리를 생략해 Twitter 기본 필드만 받는다.
func (c *Client) LookupUserByUsername(ctx context.Context, username string, fields []string) (User, error) {
	if c.bearerToken == "" {
		return User{}, ErrMissingBearerToken
	}

	var query url.Values
	if len(fields) > 0 {
		query = url.Values{}
		query.Set("user.fields", strings.Join(fields, ","))
	}

	// "." / ".." 는 경로 정규화 과정에서 다른 엔드포인트로 바뀌므로 호출하지 않는다.
	// 실제 Twitter username 은 영숫자와 _ 만 허용하므로 존재할 수 없는 계정이다.
	if username == "" || username == "." || username == ".." {
		return User{}, fmt.Errorf("%w: invalid username %q", ErrNotFound, username)
	}

	relPath := "/users/by/username/" + url.PathEscape(username)
	req, err := c.base.NewRequest(ctx, http.MethodGet, relPath, query)
	if err != nil {
		return User{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.bearerToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.base.Do(req)
	if err != nil {
		return User{}, fmt.Errorf("twitter LookupUserByUsername: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// 본문 전체 대신 problem 응답의 title 만 남긴다.
		var problem APIError
		_ = json.NewDecoder(io.LimitReader(resp.Body, 2048)).Decode(&problem)
		return User{}, fmt.Errorf("twitter LookupUserByUsername: status=%d title=%q", resp.StatusCode, problem.Title)
	}

	var out UserResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return User{}, fmt.Errorf("twitter LookupUserByUsername: decode response: %w", err)
	}
	// {"data":{}} 처럼 username 이 비어 있는 응답도 계정이 없는 것으로 본다.
	if out.Data == nil || out.Data.Username == "" {
		if len(out.Errors) > 0 {
			return User{}, fmt.Errorf("%w: %s", ErrNotFound, out.Errors[0].Detail)
		}
		return User{}, ErrNotFound
	}
	return *out.Data, nil
}
