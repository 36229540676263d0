package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/bufview/pkg/recordwire"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1
	records := [][]byte{
		[]byte("azerty"),
		[]byte("hello"),
		[]byte("world"),
		[]byte("random"),
	}
	var enc recordwire.Encoder
	var dec recordwire.Decoder
	for i := 0; i < 10000; i++ {
		frame, _ := enc.Encode(records, recordwire.FlagZstd)
		dec.Decode(frame)
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
