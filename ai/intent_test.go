package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		question string
		want     Intent
	}{
		{"BBL이 뭐예요?", IntentConcept},
		{"복지포인트에 대해 알려줘", IntentConcept},
		{"휴가는 어떻게 쓰나요?", IntentHowTo},
		{"VDI 접속 방법", IntentHowTo},
		{"건강검진은 언제 받을 수 있나요?", IntentWhen},
		{"연말정산 일정이 궁금해요", IntentConcept}, // 궁금 outranks 일정
		{"주차장은 어디에 있나요?", IntentWhere},
		{"출장비는 얼마까지 지원되나요?", IntentHowMuch},
		{"명함 재발급", IntentGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyIntent(tt.question))
		})
	}
}

func TestIntentString(t *testing.T) {
	assert.Equal(t, "howto", IntentHowTo.String())
	assert.Equal(t, "general", IntentGeneral.String())
	assert.Equal(t, "general", Intent(42).String())
}
