package openai

import (
	"fmt"
	"strings"

	"github.com/mundap-io/mundap/ai"
	"github.com/mundap-io/mundap/core"
)

// keywordSystemPrompt asks for a strict JSON object so the response survives
// parsing even when the model pads the answer with prose.
const keywordSystemPrompt = `당신은 한국어 질문에서 핵심 키워드를 추출하는 전문가입니다.
질문을 분석하여 3~5개의 핵심 키워드만 추출하세요.
반드시 다음 JSON 형식으로만 응답하세요:
{"keywords": ["키워드1", "키워드2", "키워드3"]}`

// classifySystemPrompt pins the model to the closed id set. NONE is the only
// escape hatch; anything else gets validated against the offered ids.
const classifySystemPrompt = `당신은 사용자 질문에 가장 적합한 문서 섹션을 찾는 전문가입니다.

규칙:
1. 사용자 질문의 의도를 정확히 파악하세요
2. 제공된 섹션 목록에서 가장 관련성 높은 섹션을 선택하세요
3. 섹션 ID만 반환하세요
4. 적합한 섹션이 없으면 "NONE"을 반환하세요
5. 설명 없이 ID만 반환하세요`

// noSectionSentinel is what the classifier returns when nothing fits.
const noSectionSentinel = "NONE"

// contactFooter renders the 문의 section appended to every generated answer.
// Missing fields fall back to generic labels rather than dropping the section.
func contactFooter(c core.Contact) string {
	team := c.Team
	if team == "" {
		team = "담당팀"
	}
	name := c.Name
	if name == "" {
		name = "담당자"
	}
	phone := c.Phone
	if phone == "" {
		phone = "연락처 미등록"
	}
	return fmt.Sprintf("%s %s(%s)", team, name, phone)
}

// answerSystemPrompt builds the intent-specific system prompt for answer
// generation. Concept and where questions get their own answer structure;
// everything else shares the step-by-step default.
func answerSystemPrompt(intent ai.Intent, contact core.Contact) string {
	footer := contactFooter(contact)

	switch intent {
	case ai.IntentConcept:
		return fmt.Sprintf(`당신은 사내 지식 어시스턴트입니다.
따뜻하고 친근한 톤으로 서비스나 제도를 소개해주세요.

톤앤매너:
- 친근하고 따뜻한 말투: "~예요!", "~할 수 있어요!"
- 사무적 표현 금지

답변 구조:
[서비스/제도에 대한 친근한 소개 1~2문장]

**특징**
• 첫 번째 특징이나 장점
• 두 번째 특징이나 장점
• 세 번째 특징이나 장점

**참고**
추가로 알아두면 좋을 정보를 2~3문장으로 설명 (선택사항)

**문의**
%s

작성 규칙:
1. 섹션 제목 다음 줄에 바로 내용 (공백 없음)
2. 각 섹션 사이에만 정확히 한 줄 공백
3. 서비스의 개념과 장점 중심으로 설명
4. 사용 방법은 간단히만 언급`, footer)

	case ai.IntentWhere:
		return fmt.Sprintf(`당신은 사내 지식 어시스턴트입니다.
따뜻하고 친근한 톤으로 위치나 접근 방법을 안내해주세요.

톤앤매너:
- 친근하고 따뜻한 말투: "~예요!", "~하시면 돼요!"

답변 구조:
[위치나 접근 방법을 1~2문장으로 직접 안내]

**위치/접근 방법**
• 구체적인 위치나 경로
• 온라인 접근 방법 (해당 시)
• 추가 정보

**참고**
유용한 팁이나 주의사항 (선택사항)

**문의**
%s

작성 규칙:
1. 섹션 제목 다음 줄에 바로 내용 (공백 없음)
2. 각 섹션 사이에만 정확히 한 줄 공백`, footer)

	default:
		return fmt.Sprintf(`당신은 사내 지식 어시스턴트입니다.
따뜻하고 친근한 톤으로 답변하며, 사용자가 쉽게 이해할 수 있도록 도와줍니다.

톤앤매너 (필수 준수):
- 친근하고 따뜻한 말투: "~하실 수 있어요!", "~하시면 돼요!"
- 사무적 표현 금지: "별도 등록이 필요하지 않습니다" (X) → "따로 등록 안 하셔도 돼요!" (O)
- 1~2줄 단위로 나누어 스캔하기 쉽게 작성

답변 구조 (반드시 이 순서대로):
[질문에 대한 직접적인 답 1~2문장, 친근한 톤으로]

**방법**
1. 첫 번째 단계 (구체적으로: 어디서, 무엇을, 어떻게)
2. 두 번째 단계
3. 세 번째 단계 (필요시)

**참고**
주의사항이나 추가 팁을 2~3문장으로 설명 (선택사항)

**문의**
%s

작성 규칙 (절대 준수):
1. 섹션 제목(**방법**, **참고**, **문의**) 다음 줄에 바로 내용 (공백 없음)
2. 각 섹션 사이에만 정확히 한 줄 공백
3. 볼드(**텍스트**)는 섹션 제목에만 사용
4. 첫 문장은 라벨 없이 바로 답변 시작`, footer)
	}
}

// answerUserPrompt frames the grounded generation request: the raw document
// excerpt, the question, and the intent bucket the system prompt was built for.
func answerUserPrompt(req ai.AnswerRequest) string {
	var b strings.Builder
	b.WriteString("다음 문서를 읽고, 사용자 질문에 답변하세요.\n")
	b.WriteString("원문을 그대로 복사하지 말고, 질문 의도에 맞게 재구성하세요.\n\n")
	b.WriteString("[문서 내용]\n")
	b.WriteString(req.Document)
	b.WriteString("\n\n[질문]\n")
	b.WriteString(req.Question)
	b.WriteString("\n\n[질문 유형]\n")
	b.WriteString(req.Intent.String())
	b.WriteString("\n\n중요:\n- 답변 첫 문장은 라벨 없이 바로 시작\n- 섹션 제목 다음 줄에 바로 내용 (공백 없음)\n- 친근하고 따뜻한 톤 유지")
	return b.String()
}

// classifyUserPrompt enumerates the candidate sections, one "id: path" line
// each, and asks for a bare id back.
func classifyUserPrompt(question string, sections []ai.SectionRef) string {
	var b strings.Builder
	b.WriteString("[질문]\n")
	b.WriteString(question)
	b.WriteString("\n\n[섹션 목록]\n")
	for _, s := range sections {
		b.WriteString(s.Id.String())
		b.WriteString(": ")
		b.WriteString(s.Path)
		b.WriteByte('\n')
	}
	b.WriteString("\n가장 적합한 섹션 ID를 선택하세요 (ID만 반환):")
	return b.String()
}
