package services

import "strings"

// AvatarPolicy 는 profile_image_url 을 avatar_url 로 옮길 때의 변환 규칙이다.
type AvatarPolicy struct {
	StripSuffix bool
	Suffix      string
}

// AvatarURL 은 StripSuffix 가 켜져 있으면 이미지 파일명 끝의 사이즈 토큰(예: _normal)을 제거해
// 원본 해상도 URL 을 만든다. 토큰은 마지막 경로 세그먼트에서 확장자 바로 앞(또는 끝)에 있을 때만 제거한다.
//
//	https://pbs.twimg.com/profile_images/1/foo_normal.png -> https://pbs.twimg.com/profile_images/1/foo.png
func AvatarURL(raw string, policy AvatarPolicy) string {
	if !policy.StripSuffix || policy.Suffix == "" || raw == "" {
		return raw
	}

	end := len(raw)
	if i := strings.IndexAny(raw, "?#"); i >= 0 {
		end = i
	}
	head, tail := raw[:end], raw[end:]

	slash := strings.LastIndex(head, "/")
	dir, file := head[:slash+1], head[slash+1:]

	idx := strings.LastIndex(file, policy.Suffix)
	if idx <= 0 {
		return raw
	}
	rest := file[idx+len(policy.Suffix):]
	if rest != "" && rest[0] != '.' {
		return raw
	}
	return dir + file[:idx] + rest + tail
}
