//go:build cgo

package bass

/*
#include "bass.h"
*/
import "C"

// InitFlags represents BASS library initialization flags.
type InitFlags int

const (
	InitFlag8BITS     InitFlags = C.BASS_DEVICE_8BITS     // 8 bit
	InitFlagMONO      InitFlags = C.BASS_DEVICE_MONO      // mono
	InitFlag16BITS    InitFlags = C.BASS_DEVICE_16BITS    // limit output to 16 bit
	InitFlagLATENCY   InitFlags = C.BASS_DEVICE_LATENCY   // calculate device latency (BASS_INFO struct)
	InitFlagNOSPEAKER InitFlags = C.BASS_DEVICE_NOSPEAKER // ignore speaker arrangement
	InitFlagDMIX      InitFlags = C.BASS_DEVICE_DMIX      // use ALSA "dmix" plugin
	InitFlagFREQ      InitFlags = C.BASS_DEVICE_FREQ      // set device sample rate
	InitFlagSTEREO    InitFlags = C.BASS_DEVICE_STEREO    // limit output to stereo
)

// StreamFlags represents stream creation flags.
type StreamFlags int

const (
	Sample8Bits    StreamFlags = C.BASS_SAMPLE_8BITS    // 8 bit samples
	SampleFloat    StreamFlags = C.BASS_SAMPLE_FLOAT    // 32 bit floating-point samples
	SampleLoop     StreamFlags = C.BASS_SAMPLE_LOOP     // loop the stream
	StreamAutoFree StreamFlags = C.BASS_STREAM_AUTOFREE // free the stream when playback ends
	StreamDecode   StreamFlags = C.BASS_STREAM_DECODE   // decoding channel, no playback
	StreamBlock    StreamFlags = C.BASS_STREAM_BLOCK    // download in blocks (URL streams)
	StreamStatus   StreamFlags = C.BASS_STREAM_STATUS   // pass server status info to DOWNLOADPROC
)

// ChannelStatus is the playback state reported by BASS_ChannelIsActive.
type ChannelStatus int

const (
	ChannelStatusStopped      ChannelStatus = C.BASS_ACTIVE_STOPPED
	ChannelStatusPlaying      ChannelStatus = C.BASS_ACTIVE_PLAYING
	ChannelStatusStalled      ChannelStatus = C.BASS_ACTIVE_STALLED
	ChannelStatusPaused       ChannelStatus = C.BASS_ACTIVE_PAUSED
	ChannelStatusPausedDevice ChannelStatus = C.BASS_ACTIVE_PAUSED_DEVICE
)

// ErrorCode represents BASS library error codes.
type ErrorCode int

const (
	ErrorOK       ErrorCode = C.BASS_OK             // all is OK
	ErrorMEM      ErrorCode = C.BASS_ERROR_MEM      // memory error
	ErrorFILEOPEN ErrorCode = C.BASS_ERROR_FILEOPEN // can't open the file
	ErrorDRIVER   ErrorCode = C.BASS_ERROR_DRIVER   // can't find a free/valid driver
	ErrorBUFLOST  ErrorCode = C.BASS_ERROR_BUFLOST  // the sample buffer was lost
	ErrorHANDLE   ErrorCode = C.BASS_ERROR_HANDLE   // invalid handle
	ErrorFORMAT   ErrorCode = C.BASS_ERROR_FORMAT   // unsupported sample format
	ErrorPOSITION ErrorCode = C.BASS_ERROR_POSITION // invalid position
	ErrorINIT     ErrorCode = C.BASS_ERROR_INIT     // BASS_Init has not been successfully called
	ErrorSTART    ErrorCode = C.BASS_ERROR_START    // BASS_Start has not been successfully called
	ErrorSSL      ErrorCode = C.BASS_ERROR_SSL      // SSL/HTTPS support isn't available
	ErrorALREADY  ErrorCode = C.BASS_ERROR_ALREADY  // already initialized/paused/whatever
	ErrorNOCHAN   ErrorCode = C.BASS_ERROR_NOCHAN   // can't get a free channel
	ErrorILLTYPE  ErrorCode = C.BASS_ERROR_ILLTYPE  // an illegal type was specified
	ErrorILLPARAM ErrorCode = C.BASS_ERROR_ILLPARAM // an illegal parameter was specified
	ErrorDEVICE   ErrorCode = C.BASS_ERROR_DEVICE   // illegal device number
	ErrorNOPLAY   ErrorCode = C.BASS_ERROR_NOPLAY   // not playing
	ErrorFREQ     ErrorCode = C.BASS_ERROR_FREQ     // illegal sample rate
	ErrorNOTFILE  ErrorCode = C.BASS_ERROR_NOTFILE  // the stream is not a file stream
	ErrorNOHW     ErrorCode = C.BASS_ERROR_NOHW     // no hardware voices available
	ErrorNONET    ErrorCode = C.BASS_ERROR_NONET    // no internet connection could be opened
	ErrorCREATE   ErrorCode = C.BASS_ERROR_CREATE   // couldn't create the file
	ErrorNOTAVAIL ErrorCode = C.BASS_ERROR_NOTAVAIL // requested data is not available
	ErrorDECODE   ErrorCode = C.BASS_ERROR_DECODE   // the channel is/isn't a "decoding channel"
	ErrorTIMEOUT  ErrorCode = C.BASS_ERROR_TIMEOUT  // connection timed out
	ErrorFILEFORM ErrorCode = C.BASS_ERROR_FILEFORM // unsupported file format
	ErrorSPEAKER  ErrorCode = C.BASS_ERROR_SPEAKER  // unavailable speaker
	ErrorVERSION  ErrorCode = C.BASS_ERROR_VERSION  // invalid BASS version (used by add-ons)
	ErrorCODEC    ErrorCode = C.BASS_ERROR_CODEC    // codec is not available/supported
	ErrorENDED    ErrorCode = C.BASS_ERROR_ENDED    // the channel/file has ended
	ErrorBUSY     ErrorCode = C.BASS_ERROR_BUSY     // the device is busy
	ErrorUNKNOWN  ErrorCode = C.BASS_ERROR_UNKNOWN  // some other mystery problem
)
