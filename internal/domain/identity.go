package domain

import "time"

// runStampLayout truncates the run timestamp to minutes (YYYYMMDDHHmm).
const runStampLayout = "200601021504"

// RunIdentity ties the audio, transcript and result files of one run together.
//
// Two runs of the same video started within the same wall-clock minute get the
// same identity and overwrite each other's files (last writer wins).
type RunIdentity struct {
	VideoStem string    `json:"video_stem"`
	StartedAt time.Time `json:"started_at"`
}

// NewRunIdentity derives the identity for a run of video started at t.
func NewRunIdentity(video string, t time.Time) RunIdentity {
	return RunIdentity{
		VideoStem: Stem(video),
		StartedAt: t.Truncate(time.Minute),
	}
}

// BaseName returns {video_stem}_{YYYYMMDDHHmm}.
func (r RunIdentity) BaseName() string {
	return r.VideoStem + "_" + r.StartedAt.Format(runStampLayout)
}

func (r RunIdentity) String() string {
	return r.BaseName()
}
