/*
Copyright 2026 the DummyJSON API Tests Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/dummyjson-qa/apitests/pkg/constants"
	"github.com/dummyjson-qa/apitests/test/api/fake"

	cr "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

type options struct {
	listenAddress   string
	signingKey      string
	username        string
	password        string
	shutdownTimeout time.Duration
}

func (o *options) AddFlags(f *pflag.FlagSet) {
	user := fake.DefaultUser()

	f.StringVar(&o.listenAddress, "listen-address", ":8080", "Address to serve the fake API on")
	f.StringVar(&o.signingKey, "signing-key", "", "HMAC key for issued tokens, random if unset")
	f.StringVar(&o.username, "username", user.Username, "Username the fake accepts")
	f.StringVar(&o.password, "password", user.Password, "Password the fake accepts")
	f.DurationVar(&o.shutdownTimeout, "shutdown-timeout", 5*time.Second, "Time to drain connections on shutdown")
}

func run(ctx context.Context, o *options) error {
	logger := log.Log.WithName("fake")

	user := fake.DefaultUser()
	user.Username = o.username
	user.Password = o.password

	server := &http.Server{
		Addr: o.listenAddress,
		Handler: fake.New(fake.Options{
			Users:      []fake.User{user},
			SigningKey: []byte(o.signingKey),
			Logger:     logger,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), o.shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error(err, "shutdown failed")
		}
	}()

	logger.Info("service starting", "application", constants.Application, "version", constants.Version, "revision", constants.Revision)
	logger.Info("serving fake DummyJSON API", "address", o.listenAddress, "username", o.username)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func main() {
	o := &options{}
	o.AddFlags(pflag.CommandLine)

	zapOptions := zap.Options{
		Development: true,
	}

	goflags := flag.NewFlagSet("logging", flag.ExitOnError)
	zapOptions.BindFlags(goflags)
	pflag.CommandLine.AddGoFlagSet(goflags)

	pflag.Parse()

	log.SetLogger(zap.New(zap.UseFlagOptions(&zapOptions)))

	if err := run(cr.SetupSignalHandler(), o); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
