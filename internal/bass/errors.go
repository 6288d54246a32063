package bass

import "fmt"

// Error is a failed call into the library, carrying the code reported by
// BASS_ErrorGetCode.
type Error struct {
	Op   string
	Code ErrorCode
}

func (e *Error) Error() string {
	return fmt.Sprintf("bass: %s: %s", e.Op, e.Code.Message())
}

// errorMessages maps BASS error codes to the library's documented
// descriptions.
var errorMessages = map[ErrorCode]string{
	ErrorOK:       "all is OK",
	ErrorMEM:      "memory error",
	ErrorFILEOPEN: "can't open the file",
	ErrorDRIVER:   "can't find a free/valid driver",
	ErrorBUFLOST:  "the sample buffer was lost",
	ErrorHANDLE:   "invalid handle",
	ErrorFORMAT:   "unsupported sample format",
	ErrorPOSITION: "invalid position",
	ErrorINIT:     "BASS_Init has not been successfully called",
	ErrorSTART:    "BASS_Start has not been successfully called",
	ErrorSSL:      "SSL/HTTPS support isn't available",
	ErrorALREADY:  "already initialized/paused/whatever",
	ErrorNOCHAN:   "can't get a free channel",
	ErrorILLTYPE:  "an illegal type was specified",
	ErrorILLPARAM: "an illegal parameter was specified",
	ErrorDEVICE:   "illegal device number",
	ErrorNOPLAY:   "not playing",
	ErrorFREQ:     "illegal sample rate",
	ErrorNOTFILE:  "the stream is not a file stream",
	ErrorNOHW:     "no hardware voices available",
	ErrorNONET:    "no internet connection could be opened",
	ErrorCREATE:   "couldn't create the file",
	ErrorNOTAVAIL: "requested data is not available",
	ErrorDECODE:   "the channel is/isn't a 'decoding channel'",
	ErrorTIMEOUT:  "connection timed out",
	ErrorFILEFORM: "unsupported file format",
	ErrorSPEAKER:  "unavailable speaker",
	ErrorVERSION:  "invalid BASS version (used by add-ons)",
	ErrorCODEC:    "codec is not available/supported",
	ErrorENDED:    "the channel/file has ended",
	ErrorBUSY:     "the device is busy",
	ErrorUNKNOWN:  "some other mystery problem",
}

// Message returns the library's documented description of an error code.
func (c ErrorCode) Message() string {
	if msg, ok := errorMessages[c]; ok {
		return msg
	}
	return "unknown error"
}

// String names a channel status for logs.
func (s ChannelStatus) String() string {
	switch s {
	case ChannelStatusStopped:
		return "stopped"
	case ChannelStatusPlaying:
		return "playing"
	case ChannelStatusStalled:
		return "stalled"
	case ChannelStatusPaused:
		return "paused"
	case ChannelStatusPausedDevice:
		return "paused (device)"
	default:
		return fmt.Sprintf("unknown (%d)", int(s))
	}
}
