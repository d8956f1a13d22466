package domain

import "videoskill/pkg/ssml"

const (
	ResponseVersion = "1.0"

	DirectiveVideoAppLaunch = "VideoApp.Launch"
	SpeechTypeSSML          = "SSML"
)

// Response is the value every handler returns. It is built by Ask, Tell or
// Empty and never mutated afterward: WithVideo returns a copy.
type Response struct {
	Speech   string
	Reprompt string
	Video    *VideoItem
	// nil leaves shouldEndSession out of the response.
	ShouldEndSession *bool
}

// Ask speaks text and reprompts with the same text, keeping the session open.
func Ask(text string) Response {
	keepOpen := false
	return Response{Speech: text, Reprompt: text, ShouldEndSession: &keepOpen}
}

// Tell speaks text without a reprompt.
func Tell(text string) Response {
	return Response{Speech: text}
}

// Empty is the response with no speech at all.
func Empty() Response {
	return Response{}
}

// WithVideo attaches a VideoApp.Launch directive. The platform rejects
// shouldEndSession alongside that directive, so it is dropped.
func (r Response) WithVideo(source, title string) Response {
	r.Video = &VideoItem{Source: source, Metadata: &VideoMetadata{Title: title}}
	r.ShouldEndSession = nil
	return r
}

// Envelope renders the response in the platform's wire format.
func (r Response) Envelope(userAgent string) ResponseEnvelope {
	var body ResponseBody
	if r.Speech != "" {
		body.OutputSpeech = &OutputSpeech{Type: SpeechTypeSSML, SSML: ssml.Speak(r.Speech)}
	}
	if r.Reprompt != "" {
		body.Reprompt = &Reprompt{OutputSpeech: OutputSpeech{Type: SpeechTypeSSML, SSML: ssml.Speak(r.Reprompt)}}
	}
	if r.Video != nil {
		video := *r.Video
		body.Directives = []Directive{{Type: DirectiveVideoAppLaunch, VideoItem: &video}}
	}
	if r.ShouldEndSession != nil {
		end := *r.ShouldEndSession
		body.ShouldEndSession = &end
	}
	return ResponseEnvelope{
		Version:   ResponseVersion,
		UserAgent: userAgent,
		Response:  body,
	}
}

type ResponseEnvelope struct {
	Version   string       `json:"version"`
	UserAgent string       `json:"userAgent,omitempty"`
	Response  ResponseBody `json:"response"`
}

type ResponseBody struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	Directives       []Directive   `json:"directives,omitempty"`
	ShouldEndSession *bool         `json:"shouldEndSession,omitempty"`
}

type OutputSpeech struct {
	Type string `json:"type"`
	SSML string `json:"ssml"`
}

type Reprompt struct {
	OutputSpeech OutputSpeech `json:"outputSpeech"`
}

type Directive struct {
	Type      string     `json:"type"`
	VideoItem *VideoItem `json:"videoItem,omitempty"`
}

type VideoItem struct {
	Source   string         `json:"source"`
	Metadata *VideoMetadata `json:"metadata,omitempty"`
}

type VideoMetadata struct {
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
}
