package aac_test

import (
	"fmt"

	"github.com/llehouerou/go-aac"
)

func Example() {
	f := aac.AudioFormat{
		Encoding:     aac.ObjectTypeLC,
		ChannelCount: 2,
		BitDepth:     16,
		SampleRate:   48000,
		Framing:      aac.FramingADTS,
	}

	h, err := aac.ADTSFromFormat(f)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	h.AACFrameLength = 13

	back, err := aac.FormatFromADTS(h)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("sample rate: %d Hz\n", back.SampleRate)
	fmt.Printf("channels: %d\n", back.ChannelCount)
	fmt.Printf("object type: %s\n", f.Encoding)

	// Output:
	// sample rate: 48000 Hz
	// channels: 2
	// object type: AAC_LC
}

func ExampleASCFromFormat() {
	f := aac.AudioFormat{
		Encoding:     aac.ObjectTypeLC,
		ChannelCount: 1,
		BitDepth:     16,
		SampleRate:   44100,
		Framing:      aac.FramingRaw,
	}

	asc, err := aac.ASCFromFormat(f)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("object type index: %d\n", asc.ObjectTypeIndex)
	fmt.Printf("channels configuration: %d\n", asc.ChannelsConfiguration)

	// Output:
	// object type index: 2
	// channels configuration: 1
}
