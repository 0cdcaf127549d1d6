package ai

import "strings"

// Intent is the coarse shape of a question, used to pick the answer
// generation prompt. The buckets come from surface trigger words, not from
// the model, so classification is free and deterministic.
type Intent int

const (
	// IntentGeneral is the default bucket when nothing else matches.
	IntentGeneral Intent = iota
	// IntentConcept asks what something is.
	IntentConcept
	// IntentHowTo asks for a procedure.
	IntentHowTo
	// IntentWhen asks about dates, periods or schedules.
	IntentWhen
	// IntentWhere asks for a location or where to look.
	IntentWhere
	// IntentHowMuch asks about amounts or cost.
	IntentHowMuch
)

func (i Intent) String() string {
	switch i {
	case IntentConcept:
		return "concept"
	case IntentHowTo:
		return "howto"
	case IntentWhen:
		return "when"
	case IntentWhere:
		return "where"
	case IntentHowMuch:
		return "howmuch"
	default:
		return "general"
	}
}

// Buckets are checked in order; the first trigger hit wins. Order matters:
// "언제 신청하나요" should land in howto, matching the question's actionable
// half, before when gets a chance only if no howto trigger is present.
var intentTriggers = []struct {
	intent   Intent
	triggers []string
}{
	{IntentConcept, []string{"뭐예요", "무엇", "궁금해요", "궁금", "소개", "알려줘", "설명", "이란", "란"}},
	{IntentHowTo, []string{"어떻게", "방법", "사용", "신청", "처리", "등록", "설치"}},
	{IntentWhen, []string{"언제", "기간", "일정", "시간", "날짜", "몇시", "몇일"}},
	{IntentWhere, []string{"어디", "위치", "장소", "볼 수 있", "확인", "찾"}},
	{IntentHowMuch, []string{"얼마", "금액", "비용", "가격", "요금"}},
}

// ClassifyIntent buckets a Korean question by trigger substrings.
func ClassifyIntent(question string) Intent {
	for _, row := range intentTriggers {
		for _, trigger := range row.triggers {
			if strings.Contains(question, trigger) {
				return row.intent
			}
		}
	}
	return IntentGeneral
}
