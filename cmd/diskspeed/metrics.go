package main

import (
	"fmt"
	"net"
	"net/http"

	"github.com/Cloud-Foundations/Dominator/lib/log"
	"github.com/Cloud-Foundations/diskspeed/lib/diskbench"
	"github.com/Cloud-Foundations/tricorder/go/tricorder"
)

func startMetricsServer(session *diskbench.Session, portNum uint,
	logger log.Logger) error {
	dir, err := tricorder.RegisterDirectory("/diskspeed")
	if err != nil {
		return err
	}
	if err := session.RegisterMetrics(dir); err != nil {
		return err
	}
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", portNum))
	if err != nil {
		return err
	}
	logger.Printf("serving metrics on port: %d\n", portNum)
	go func() {
		if err := http.Serve(listener, nil); err != nil {
			logger.Println(err)
		}
	}()
	return nil
}
