package feeds

import (
	"context"
	"errors"
	"html"
	"math/rand/v2"
	"time"

	"github.com/depu2006/CareerGenomeai/internal/models"
)

var ErrNoTrivia = errors.New("feeds: trivia service returned no question")

type triviaResponse struct {
	ResponseCode int `json:"response_code"`
	Results      []struct {
		Question         string   `json:"question"`
		CorrectAnswer    string   `json:"correct_answer"`
		IncorrectAnswers []string `json:"incorrect_answers"`
	} `json:"results"`
}

// Trivia fetches one general computer-science multiple-choice question.
// Text arrives HTML-escaped; options are shuffled with the answer among them.
func (c *Client) Trivia(ctx context.Context) (models.MCQ, error) {
	var body triviaResponse
	if err := c.getJSON(ctx, c.urls.Trivia, "", 5*time.Second, &body); err != nil {
		return models.MCQ{}, err
	}
	if body.ResponseCode != 0 || len(body.Results) == 0 {
		return models.MCQ{}, ErrNoTrivia
	}

	item := body.Results[0]
	answer := html.UnescapeString(item.CorrectAnswer)
	options := make([]string, 0, len(item.IncorrectAnswers)+1)
	for _, opt := range item.IncorrectAnswers {
		options = append(options, html.UnescapeString(opt))
	}
	options = append(options, answer)
	rand.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

	return models.MCQ{
		Question: html.UnescapeString(item.Question),
		Answer:   answer,
		Options:  options,
	}, nil
}
