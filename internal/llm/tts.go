/**
* Name: 			tts.go
* Description: 		면접 질문 음성 합성 (Google Text-to-Speech)
* Workflow: 		텍스트 전송, LINEAR16 오디오 수신
 */

package llm

import (
	"context"
	"fmt"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

type TTSClient struct {
	client *texttospeech.Client
	log    *zap.Logger
}

func NewTTSClient(ctx context.Context, credentialsFile string, log *zap.Logger) (*TTSClient, error) {
	client, err := texttospeech.NewClient(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("NewTTSClient(): failed to create TTS client: %w", err)
	}
	return &TTSClient{client: client, log: log}, nil
}

func (t *TTSClient) Synthesize(ctx context.Context, text string) ([]byte, error) {
	req := &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: "en-US",
			Name:         "en-US-Wavenet-D",
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding:   texttospeechpb.AudioEncoding_LINEAR16,
			SampleRateHertz: 16000,
		},
	}

	resp, err := t.client.SynthesizeSpeech(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("tts: synthesize: %w", err)
	}
	// Notice: 문장 전체 변환 후 반환. 지연을 줄이려면 StreamingSynthesize 필요
	t.log.Debug("synthesized question", zap.Int("audio_bytes", len(resp.AudioContent)))
	return resp.AudioContent, nil
}

func (t *TTSClient) Close() error {
	if t.client != nil {
		return t.client.Close()
	}
	return nil
}
