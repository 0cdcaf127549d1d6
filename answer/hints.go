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

package answer

import (
	"fmt"
	"strings"
)

// categoryHint points a failed query at the display category its trigger
// words suggest, with a couple of example questions to retry with.
type categoryHint struct {
	Display   string
	Triggers  []string
	Questions []string
}

// hintTable is checked in order; the first category with a trigger word
// in the question wins.
var hintTable = []categoryHint{
	{
		Display:   "HR",
		Triggers:  []string{"휴가", "연차", "반차", "근태", "출장", "경조사"},
		Questions: []string{"연차는 어떻게 사용하나요?", "휴가 신청 방법이 궁금해요"},
	},
	{
		Display:   "IT",
		Triggers:  []string{"네트워크", "VDI", "PC", "노트북", "와이파이", "프로그램", "설치"},
		Questions: []string{"VDI는 어떻게 접속하나요?", "네트워크 에이전트 설치 방법"},
	},
	{
		Display:   "복리후생",
		Triggers:  []string{"복지", "건강검진", "BBL", "상품권", "포상"},
		Questions: []string{"건강검진은 어떻게 받나요?", "BBL 정산 방법이 궁금해요"},
	},
	{
		Display:   "총무",
		Triggers:  []string{"사무실", "주차", "명함", "택배", "출입"},
		Questions: []string{"주차권은 어떻게 신청하나요?", "명함 신청 방법"},
	},
}

// hintFor scans the question for category trigger words.
func hintFor(question string) (*categoryHint, bool) {
	for i := range hintTable {
		for _, trigger := range hintTable[i].Triggers {
			if strings.Contains(question, trigger) {
				return &hintTable[i], true
			}
		}
	}
	return nil, false
}

// hintText renders the not-found response, with a category pointer when
// a trigger word matched.
func hintText(question string, hint *categoryHint) string {
	var b strings.Builder
	fmt.Fprintf(&b, "죄송해요, %q에 대한 정보를 찾지 못했어요.", question)

	if hint != nil {
		fmt.Fprintf(&b, "\n\n혹시 찾으시는 정보가 '%s' 카테고리에 있을 수 있어요!\n상단의 '%s' 버튼을 눌러보세요.",
			hint.Display, hint.Display)
	}

	b.WriteString("\n\n**다른 방법으로 질문해보세요**\n")
	b.WriteString("- 다른 단어로 바꿔서 질문해주세요\n")
	b.WriteString("- 좀 더 구체적으로 질문해주세요\n")
	b.WriteString("- 상단 카테고리 버튼에서 찾아보세요\n\n")
	b.WriteString("그래도 안 되면 담당 부서에 직접 문의해주세요!")
	return b.String()
}
