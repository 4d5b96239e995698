// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"bytes"
	"context"
	"strings"
	"text/template"
)

// Languages lists the supported output languages.
var Languages = []string{"zh-CN", "zh-TW", "en", "ja", "ko"}

// NormalizeLang returns lang when supported and "en" otherwise.
func NormalizeLang(lang string) string {
	for _, l := range Languages {
		if strings.EqualFold(l, lang) {
			return l
		}
	}
	return "en"
}

const (
	summaryTemperature = 0.7
	summaryMaxTokens   = 800
)

var summaryPrompts = map[string]string{
	"en": `You are a professional research paper analysis assistant. Please analyze the following English paper abstract.

**Requirements:**
1. First, summarize the core content and research objectives in 2-3 sentences
2. Then list **3 key innovations**, each described in one sentence

**Output format:**
📝 **Paper Summary**
[Your summary]

💡 **Key Innovations**
1. [Innovation 1]
2. [Innovation 2]
3. [Innovation 3]

Be concise and professional for quick understanding.`,

	"zh-CN": `你是一位专业的科研论文解读助手。请根据用户提供的英文论文摘要，用简体中文进行解读。

**输出要求：**
1. 先用 2-3 句话概括论文的核心内容和研究目标
2. 然后列出 **3 个核心创新点**，每个创新点用一句话描述

**输出格式：**
📝 **论文概述**
[你的概述内容]

💡 **核心创新点**
1. [创新点1]
2. [创新点2]
3. [创新点3]

请确保语言简洁专业，便于快速理解。`,

	"zh-TW": `你是一位專業的科研論文解讀助手。請根據用戶提供的英文論文摘要，用繁體中文進行解讀。

**輸出要求：**
1. 先用 2-3 句話概括論文的核心內容和研究目標
2. 然後列出 **3 個核心創新點**，每個創新點用一句話描述

**輸出格式：**
📝 **論文概述**
[你的概述內容]

💡 **核心創新點**
1. [創新點1]
2. [創新點2]
3. [創新點3]

請確保語言簡潔專業，便於快速理解。`,

	"ja": `あなたはプロフェッショナルな科学論文解説アシスタントです。ユーザーが提供する英語の論文アブストラクトを日本語で解説してください。

**出力要件：**
1. まず2-3文で論文の核心的な内容と研究目標を要約
2. 次に**3つの核心的イノベーションポイント**を列挙し、各ポイントを1文で説明

**出力フォーマット：**
📝 **論文概要**
[概要内容]

💡 **核心的イノベーションポイント**
1. [ポイント1]
2. [ポイント2]
3. [ポイント3]

簡潔かつ専門的な表現で、素早く理解できるようにしてください。`,

	"ko": `당신은 전문적인 과학 논문 해설 어시스턴트입니다. 사용자가 제공하는 영어 논문 초록을 한국어로 해설해주세요.

**출력 요구사항:**
1. 먼저 2-3문장으로 논문의 핵심 내용과 연구 목표를 요약
2. 그 다음 **3가지 핵심 혁신점**을 나열하고, 각 혁신점을 한 문장으로 설명

**출력 형식:**
📝 **논문 개요**
[개요 내용]

💡 **핵심 혁신점**
1. [혁신점1]
2. [혁신점2]
3. [혁신점3]

간결하고 전문적인 표현으로 빠르게 이해할 수 있도록 해주세요.`,
}

var summaryUserTmpl = template.Must(template.New("summary").Parse(`请分析以下论文摘要：

{{.Abstract}}`))

// SummaryPrompt returns the system prompt for lang.
func SummaryPrompt(lang string) string {
	return summaryPrompts[NormalizeLang(lang)]
}

// Summarize asks the backend for a summary of abstract in lang.
func Summarize(ctx context.Context, backend Backend, abstract, lang string) (string, error) {
	if strings.TrimSpace(abstract) == "" {
		return "", ErrEmptyAbstract
	}

	var buf bytes.Buffer
	if err := summaryUserTmpl.Execute(&buf, struct{ Abstract string }{abstract}); err != nil {
		return "", err
	}

	return backend.Complete(ctx, Request{
		System:      SummaryPrompt(lang),
		User:        buf.String(),
		Temperature: summaryTemperature,
		MaxTokens:   summaryMaxTokens,
	})
}
