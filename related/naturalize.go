// Copyright 2026 Mundap Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package related

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// naturalizeRule turns a section title into a question when the title
// matches. Rules are evaluated in order; the first match wins.
type naturalizeRule struct {
	match   func(title string) bool
	rewrite func(title string) string
}

func contains(substrings ...string) func(string) bool {
	return func(title string) bool {
		for _, s := range substrings {
			if strings.Contains(title, s) {
				return true
			}
		}
		return false
	}
}

func stripAll(title string, words ...string) string {
	for _, w := range words {
		title = strings.ReplaceAll(title, w, "")
	}
	return strings.TrimSpace(title)
}

var naturalizeRules = []naturalizeRule{
	{
		match: contains("방법"),
		rewrite: func(title string) string {
			return stripAll(title, "방법") + "은 어떻게 하나요?"
		},
	},
	{
		match: contains("신청", "확인"),
		rewrite: func(title string) string {
			if strings.Contains(title, "취소") {
				return stripAll(title, "취소") + " 취소는 어떻게 하나요?"
			}
			return title + "은 어떻게 하나요?"
		},
	},
	{
		match: contains("사용"),
		rewrite: func(title string) string {
			return title + " 방법이 궁금해요"
		},
	},
	{
		match: contains("현황", "분포"),
		rewrite: func(title string) string {
			return stripAll(title, "현황", "분포") + "는 어디에 있나요?"
		},
	},
	{
		match: contains("관리", "배치"),
		rewrite: func(title string) string {
			return stripAll(title, "관리") + "는 어떻게 관리하나요?"
		},
	},
	{
		match: contains("총정리", "지도"),
		rewrite: func(title string) string {
			return stripAll(title, "총정리", "지도") + "는 어디서 볼 수 있나요?"
		},
	},
	{
		match: contains("이용", "예약"),
		rewrite: func(title string) string {
			return stripAll(title, "이용", "및", "예약") + "는 어떻게 이용하나요?"
		},
	},
	{
		match: func(title string) bool {
			return strings.Contains(title, "상품") && strings.Contains(title, "서비스")
		},
		rewrite: func(string) string {
			return "주요 상품과 서비스는 무엇인가요?"
		},
	},
	{
		match: contains("지원", "혜택", "서비스"),
		rewrite: func(title string) string {
			if strings.Contains(title, "임직원") {
				return title + "은 뭐가 있나요?"
			}
			return title + "에는 어떤 게 있나요?"
		},
	},
	{
		match: contains("정산", "처리"),
		rewrite: func(title string) string {
			return stripAll(title, "정산", "처리") + "은 어떻게 정산하나요?"
		},
	},
	{
		match: contains("활동"),
		rewrite: func(title string) string {
			return title + "에는 뭐가 있나요?"
		},
	},
	{
		match: contains("플랫폼", "시스템"),
		rewrite: func(title string) string {
			return title + "은 무엇인가요?"
		},
	},
	{
		match: contains("개요"),
		rewrite: func(title string) string {
			return stripAll(title, "개요") + "에 대해 알려주세요"
		},
	},
	{
		match: contains("키트", "APP"),
		rewrite: func(title string) string {
			return title + "는 무엇인가요?"
		},
	},
	{
		match: func(title string) bool {
			return strings.Contains(title, "조직") && strings.Contains(title, "팀")
		},
		rewrite: func(string) string {
			return "조직 구조는 어떻게 되나요?"
		},
	},
	{
		match: contains("미션", "비전", "연혁"),
		rewrite: func(string) string {
			return "회사의 미션과 비전은 무엇인가요?"
		},
	},
	{
		match: func(title string) bool {
			return utf8.RuneCountInString(title) <= 8 &&
				(strings.Contains(title, "휴가") || strings.Contains(title, "반차"))
		},
		rewrite: func(title string) string {
			return title + "는 언제 사용하나요?"
		},
	},
	{
		match: contains("보험"),
		rewrite: func(title string) string {
			return title + "은 어떤 것인가요?"
		},
	},
	{
		match: func(title string) bool {
			return utf8.RuneCountInString(title) <= 10
		},
		rewrite: func(title string) string {
			return fmt.Sprintf("%s%s 궁금해요", title, subjectParticle(title))
		},
	},
}

// Naturalize converts a section title into natural question phrasing.
// Titles that match no rule get the generic "tell me about X" form.
func Naturalize(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}

	for _, rule := range naturalizeRules {
		if rule.match(title) {
			return rule.rewrite(title)
		}
	}
	return title + "에 대해 알려주세요"
}

// subjectParticle returns "이" or "가" depending on whether the title's
// final Hangul syllable carries a final consonant.
func subjectParticle(title string) string {
	last, _ := utf8.DecodeLastRuneInString(title)
	if last >= 0xAC00 && last <= 0xD7A3 && (last-0xAC00)%28 > 0 {
		return "이"
	}
	return "가"
}
