/* 요청 처리 실패를 종류별로 분류하고 HTTP 상태 코드로 변환 */

package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind는 실패의 분류. 핸들러 경계에서 상태 코드로 변환됨
type Kind int

const (
	Unexpected Kind = iota // 분류되지 않은 서버 오류
	Validation             // 입력값이 허용 범위를 벗어남
	NotFound               // 요청한 레코드가 없음
	Auth                   // 자격 증명 또는 토큰 오류
)

// Kind -> HTTP 상태 코드 매핑 테이블
var statusByKind = map[Kind]int{
	Validation: http.StatusBadRequest,
	Auth:       http.StatusUnauthorized,
	NotFound:   http.StatusNotFound,
	Unexpected: http.StatusInternalServerError,
}

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf는 에러 체인에서 가장 바깥쪽 *Error의 Kind를 꺼냄
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unexpected
}

// Status는 에러를 HTTP 상태 코드로 변환. 분류되지 않은 에러는 500
func Status(err error) int {
	return statusByKind[KindOf(err)]
}
