package services

import "errors"

var (
	// ErrProfileNotFound 는 외부 API 가 일치하는 계정을 돌려주지 않았을 때 반환된다.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrUpstreamFailure 는 네트워크/상태코드/페이로드/자격증명 등 그 밖의 모든 외부 호출 실패를 나타낸다.
	// 원인 에러는 함께 wrap 되어 errors.Is 로도 확인할 수 있다.
	ErrUpstreamFailure = errors.New("upstream failure")
)
