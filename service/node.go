package service

import (
	"errors"
	"fmt"
	"net"
	"os"
	"sync"
)

var (
	nodeOnce sync.Once
	// 进程唯一ID，用于忽略自己发出的广播
	nodeID string
)

func NodeID() string {
	nodeOnce.Do(func() {
		host, err := getLocalIP()
		if err != nil {
			host, _ = os.Hostname()
		}
		nodeID = fmt.Sprintf("%s:%d", host, os.Getpid())
	})
	return nodeID
}

func getLocalIP() (string, error) {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "", err
	}
	for _, address := range addrs {
		// 检查 ip 网络地址，排除回环地址
		if ipnet, ok := address.(*net.IPNet); ok && !ipnet.IP.IsLoopback() {
			if ipnet.IP.To4() != nil {
				return ipnet.IP.String(), nil
			}
		}
	}
	return "", errors.New("no ip address found")
}
