/**
* Name: 			stt.go
* Description: 		음성 답변 전사 (Google Speech-to-Text)
* Workflow: 		스트림 생성, 설정 전송, 오디오 청크 전송, 최종 결과 수집
 */

package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	speechpb "cloud.google.com/go/speech/apiv1/speechpb"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const audioChunkSize = 32 * 1024

var ErrNoSpeech = errors.New("stt: no speech recognized")

type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

type SpeechRecognizer struct {
	client *speech.Client
	log    *zap.Logger
}

func NewSpeechRecognizer(ctx context.Context, credentialsFile string, log *zap.Logger) (*SpeechRecognizer, error) {
	if credentialsFile == "" {
		return nil, errors.New("NewSpeechRecognizer(): credentials file is not set")
	}
	client, err := speech.NewClient(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("NewSpeechRecognizer(): failed to create speech client: %w", err)
	}
	return &SpeechRecognizer{client: client, log: log}, nil
}

// Transcribe streams 16kHz mono LINEAR16 audio and joins the final results.
func (r *SpeechRecognizer) Transcribe(ctx context.Context, audio []byte) (string, error) {
	stream, err := r.client.StreamingRecognize(ctx)
	if err != nil {
		return "", err
	}

	if err := stream.Send(&speechpb.StreamingRecognizeRequest{
		StreamingRequest: &speechpb.StreamingRecognizeRequest_StreamingConfig{
			StreamingConfig: &speechpb.StreamingRecognitionConfig{
				Config: &speechpb.RecognitionConfig{
					Encoding:          speechpb.RecognitionConfig_LINEAR16,
					SampleRateHertz:   16000,
					AudioChannelCount: 1,
					LanguageCode:      "en-US",
				},
			},
		},
	}); err != nil {
		return "", fmt.Errorf("stt: send config: %w", err)
	}

	for start := 0; start < len(audio); start += audioChunkSize {
		end := min(start+audioChunkSize, len(audio))
		if err := stream.Send(&speechpb.StreamingRecognizeRequest{
			StreamingRequest: &speechpb.StreamingRecognizeRequest_AudioContent{
				AudioContent: audio[start:end],
			},
		}); err != nil {
			return "", fmt.Errorf("stt: send audio: %w", err)
		}
	}
	if err := stream.CloseSend(); err != nil {
		return "", err
	}

	var parts []string
	for {
		resp, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("stt: receive: %w", err)
		}
		if st := resp.Error; st != nil {
			return "", errors.New(st.Message)
		}
		for _, result := range resp.Results {
			if result.IsFinal && len(result.Alternatives) > 0 {
				parts = append(parts, strings.TrimSpace(result.Alternatives[0].Transcript))
			}
		}
	}

	text := strings.TrimSpace(strings.Join(parts, " "))
	if text == "" {
		return "", ErrNoSpeech
	}
	r.log.Debug("transcribed answer", zap.Int("audio_bytes", len(audio)), zap.Int("chars", len(text)))
	return text, nil
}

func (r *SpeechRecognizer) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
