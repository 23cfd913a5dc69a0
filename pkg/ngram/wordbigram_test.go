package ngram

import (
	"math"
	"testing"
)

func TestWordBigramProbability(t *testing.T) {
	wb := NewWordBigram()
	wb.AddBigram("今天", "上海", 10)
	wb.AddBigram("今天", "很好", 5)

	if p := wb.GetProbability("今天", "上海"); math.Abs(float64(p)-0.666) > 0.01 {
		t.Fatalf("p(上海|今天) = %v", p)
	}
	if p := wb.GetProbability("今天", "很好"); math.Abs(float64(p)-0.333) > 0.01 {
		t.Fatalf("p(很好|今天) = %v", p)
	}
	if p := wb.GetProbability("今天", "不存在"); p != 0 {
		t.Fatalf("expected 0 for unseen bigram, got %v", p)
	}
}

func TestWordBigramLogProbability(t *testing.T) {
	wb := NewWordBigram()
	wb.AddBigram("你好", "世界", 100)

	if lp := wb.GetLogProbability("你好", "世界"); lp != 0 {
		t.Fatalf("expected ln(1.0)=0, got %v", lp)
	}
	if lp := wb.GetLogProbability("不存在", "也不存在"); lp != -20.0 {
		t.Fatalf("expected -20.0 floor, got %v", lp)
	}
}
