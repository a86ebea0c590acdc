package persontests

import (
	"github.com/tcs-vetclinic/person-contract-tests/framework"
)

// RunTestSuite runs every scenario against the service, one at a time, in a fixed order.
func RunTestSuite(
	service *framework.ServiceClient,
	opts Options,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	env := &environment{service: service, opts: opts}
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := &T{context: c, env: env}

		t.Run("read", DoReadTests)
		t.Run("list", DoListTests)
		t.Run("update", DoUpdateTests)
		t.Run("delete", DoDeleteTests)
		t.Run("create", DoCreateTests)
	})
}
