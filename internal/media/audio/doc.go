// Package audio is the decode capability boundary: it turns raw file bytes
// into PCM samples and container-level facts (duration, sample rate,
// channel count) without shelling out or touching the network.
//
// WAV containers decode fully to PCM. MP3 containers are probed frame by
// frame for duration, sample rate, channels, and average bitrate (no PCM).
// Other containers yield the sentinel facts; their embedded tags are still
// readable through ReadEmbeddedTags. Decode failures return the sentinel
// alongside the error so callers can continue the batch.
package audio
