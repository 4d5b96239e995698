// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package experiment

import (
	"bytes"
	"text/template"

	"github.com/pdiddy/paper-digest/internal/llm"
)

// hyperparamPrompts are the system prompts per output language.
var hyperparamPrompts = map[string]string{
	"zh-CN": `你是一个专业的论文参数提取助手。请仔细阅读以下论文片段（来自实验和实现细节章节），提取所有实验配置和超参数信息。

**请提取以下信息（如果存在）：**
- Batch Size（批次大小）
- Learning Rate（学习率）及其调度策略
- Optimizer（优化器）类型
- GPU/硬件配置
- Training Epochs/Iterations（训练轮数）
- 模型架构细节
- 数据集信息
- 其他重要超参数

**输出格式：**
🔧 **实验配置**

| 参数 | 值 |
|------|-----|
| Batch Size | [值] |
| Learning Rate | [值] |
| Optimizer | [值] |
| GPU | [值] |
| Epochs | [值] |
| ... | ... |

如果某些参数未在文中提及，请标注"未提及"。如果文本中没有任何实验细节，请回复"未找到实验配置信息"。`,

	"zh-TW": `你是一個專業的論文參數提取助手。請仔細閱讀以下論文片段（來自實驗和實現細節章節），提取所有實驗配置和超參數信息。

**請提取以下信息（如果存在）：**
- Batch Size（批次大小）
- Learning Rate（學習率）及其調度策略
- Optimizer（優化器）類型
- GPU/硬件配置
- Training Epochs/Iterations（訓練輪數）
- 模型架構細節
- 數據集信息
- 其他重要超參數

**輸出格式：**
🔧 **實驗配置**

| 參數 | 值 |
|------|-----|
| Batch Size | [值] |
| Learning Rate | [值] |
| Optimizer | [值] |
| GPU | [值] |
| Epochs | [值] |
| ... | ... |

如果某些參數未在文中提及，請標注"未提及"。`,

	"en": `You are a professional paper parameter extraction assistant. Please carefully read the following paper excerpts (from the experiments and implementation details sections) and extract all experimental configurations and hyperparameters.

**Please extract the following (if present):**
- Batch Size
- Learning Rate and scheduling strategy
- Optimizer type
- GPU/Hardware configuration
- Training Epochs/Iterations
- Model architecture details
- Dataset information
- Other important hyperparameters

**Output format:**
🔧 **Experiment Configuration**

| Parameter | Value |
|-----------|-------|
| Batch Size | [value] |
| Learning Rate | [value] |
| Optimizer | [value] |
| GPU | [value] |
| Epochs | [value] |
| ... | ... |

If some parameters are not mentioned, mark as "Not mentioned". If no experimental details found, reply "No experimental configuration found".`,

	"ja": `あなたは論文パラメータ抽出の専門アシスタントです。以下の論文テキスト（実験と実装詳細セクションから）を注意深く読み、すべての実験構成とハイパーパラメータを抽出してください。

**以下の情報を抽出してください（存在する場合）:**
- Batch Size（バッチサイズ）
- Learning Rate（学習率）とスケジューリング戦略
- Optimizer（オプティマイザ）タイプ
- GPU/ハードウェア構成
- Training Epochs/Iterations（訓練エポック数）
- モデルアーキテクチャの詳細
- データセット情報
- その他の重要なハイパーパラメータ

**出力フォーマット:**
🔧 **実験構成**

| パラメータ | 値 |
|-----------|-----|
| Batch Size | [値] |
| Learning Rate | [値] |
| Optimizer | [値] |
| GPU | [値] |
| Epochs | [値] |
| ... | ... |

文中に記載がない場合は「記載なし」と記入してください。`,

	"ko": `당신은 논문 파라미터 추출 전문 어시스턴트입니다. 다음 논문 텍스트(실험 및 구현 세부 사항 섹션)를 주의 깊게 읽고 모든 실험 구성과 하이퍼파라미터를 추출해주세요.

**다음 정보를 추출하세요 (존재하는 경우):**
- Batch Size (배치 크기)
- Learning Rate (학습률) 및 스케줄링 전략
- Optimizer (옵티마이저) 유형
- GPU/하드웨어 구성
- Training Epochs/Iterations (훈련 에폭 수)
- 모델 아키텍처 세부 사항
- 데이터셋 정보
- 기타 중요한 하이퍼파라미터

**출력 형식:**
🔧 **실험 구성**

| 파라미터 | 값 |
|----------|-----|
| Batch Size | [값] |
| Learning Rate | [값] |
| Optimizer | [값] |
| GPU | [값] |
| Epochs | [값] |
| ... | ... |

문서에 언급되지 않은 경우 "언급 없음"으로 표시하세요.`,
}

// userPromptTmpl wraps the located section as the user turn. The wrapper
// stays in Chinese for every language; the system prompt sets the output
// language.
var userPromptTmpl = template.Must(template.New("hyperparams").Parse(`请从以下论文文本中提取实验配置：

{{.Section}}`))

// SystemPrompt returns the hyperparameter prompt for lang, English when unknown.
func SystemPrompt(lang string) string {
	return hyperparamPrompts[llm.NormalizeLang(lang)]
}

func renderUserPrompt(section string) (string, error) {
	var buf bytes.Buffer
	if err := userPromptTmpl.Execute(&buf, struct{ Section string }{Section: section}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
