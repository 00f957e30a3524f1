package qgen

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// questionsPerChunk is how many items each chunked generation call asks for.
const questionsPerChunk = 3

const chunkSchema = `Return ONLY a JSON array (no code fences, no prose). ` +
	`Each item MUST be an object with keys:
  "question": string (kid-friendly, short),
  "correct": string,
  "distractors": array of 2-3 short strings (plausible, not true),
  "difficulty": "easy" | "medium" (pick sensibly for 7-12yo).
`

const fullTranscriptSchema = `Return ONLY a JSON array. Each item MUST have:
  "timestamp": number (seconds from video start where answer is found - USE THE TIMESTAMPS FROM THE TRANSCRIPT),
  "question": string (short, kid-friendly question),
  "correct": string (the correct answer, short),
  "distractors": array of 2-3 plausible but incorrect answers`

// chunkSystemPrompt builds the per-chunk system instruction in the requested
// language, including the schema contract and the no-repeat list.
func chunkSystemPrompt(language string, previousQuestions []string) string {
	noRepeat, _ := json.Marshal(previousQuestions)
	base := chunkSchema +
		"Do NOT repeat or paraphrase these previous questions: " + string(noRepeat) + ". " +
		"Questions must be answerable from the provided text only."

	switch strings.ToLower(language) {
	case "latvian":
		return "Tu esi draudzīgs skolotājs, kurš ģenerē TRĪS īsus jautājumus bērniem. " +
			"Atbildi TIKAI kā JSON masīvu. Bez komentāriem, bez ```.\n" +
			base + "\nĢenerē jautājumus LATVIEŠU valodā."
	case "spanish":
		return "Eres un maestro amigable que genera TRES preguntas cortas para niños. " +
			"Responde SOLO como un arreglo JSON. Sin comentarios, sin ```.\n" +
			base + "\nGenera preguntas en ESPAÑOL."
	case "russian":
		return "Ты дружелюбный учитель, который генерирует ТРИ коротких вопроса для детей. " +
			"Отвечай ТОЛЬКО JSON-массивом. Без комментариев, без ```.\n" +
			base + "\nГенерируй вопросы на РУССКОМ."
	}
	return "You are a friendly teacher generating THREE short questions for children. " +
		"Respond ONLY as a JSON array. No comments, no ```.\n" +
		base + "\nGenerate questions in ENGLISH."
}

func chunkUserPrompt(fragment string) string {
	return fmt.Sprintf("Text:\n%s\n\nRules:\n- Keep questions grounded strictly in this text.\n- Avoid proper nouns if not present.\n- Keep answers short (<= 12 words).", fragment)
}

// fullTranscriptPrompt builds the single-call prompt covering the whole
// timestamped transcript.
func fullTranscriptPrompt(timestampedTranscript, language string, maxQuestions int) string {
	switch strings.ToLower(language) {
	case "latvian":
		return fmt.Sprintf(`Tu esi draudzīgs skolotājs. Izveido %d viktorīnas jautājumus bērniem (7-12 gadi) no šī video transkripta.

SVARĪGI:
- Katram jautājumam JĀIEKĻAUJ timestamp (sekundēs) no transkripta, kur atrodama atbilde
- Jautājumiem jābūt secīgiem - sākot no video sākuma līdz beigām
- Ģenerē jautājumus LATVIEŠU valodā
- Atbildēm jābūt īsām (līdz 12 vārdiem)

%s

Transkripts ar laika zīmogiem:
%s

Atbildi TIKAI ar JSON masīvu. Bez komentāriem, bez `+"```"+`.`, maxQuestions, fullTranscriptSchema, timestampedTranscript)
	case "spanish":
		return fmt.Sprintf(`Eres un maestro amigable. Crea %d preguntas de quiz para niños (7-12 años) de esta transcripción.

IMPORTANTE:
- Cada pregunta DEBE incluir el timestamp (en segundos) del transcripto donde está la respuesta
- Las preguntas deben ser secuenciales - desde el inicio hasta el final del video
- Genera preguntas en ESPAÑOL
- Las respuestas deben ser cortas (máximo 12 palabras)

%s

Transcripción con marcas de tiempo:
%s

Responde SOLO con el array JSON. Sin comentarios, sin `+"```"+`.`, maxQuestions, fullTranscriptSchema, timestampedTranscript)
	case "russian":
		return fmt.Sprintf(`Ты дружелюбный учитель. Создай %d вопросов викторины для детей (7-12 лет) по этой транскрипции.

ВАЖНО:
- Каждый вопрос ДОЛЖЕН включать timestamp (в секундах) из транскрипции, где находится ответ
- Вопросы должны идти последовательно - от начала до конца видео
- Генерируй вопросы на РУССКОМ языке
- Ответы должны быть короткими (до 12 слов)

%s

Транскрипция с временными метками:
%s

Отвечай ТОЛЬКО JSON массивом. Без комментариев, без `+"```"+`.`, maxQuestions, fullTranscriptSchema, timestampedTranscript)
	}
	return fmt.Sprintf(`You are a friendly teacher. Create %d quiz questions for children (ages 7-12) from this video transcript.

IMPORTANT:
- Each question MUST include the timestamp (in seconds) from the transcript where the answer is found
- Questions should be sequential - from the start to the end of the video
- Generate questions in ENGLISH
- Keep answers short (max 12 words)
- Distractors should be plausible but clearly wrong

%s

Transcript with timestamps:
%s

Respond ONLY with the JSON array. No comments, no `+"```"+`.`, maxQuestions, fullTranscriptSchema, timestampedTranscript)
}
