/*
 *     Copyright 2023 The NetBox LoadBalancer Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/djohnnes/netbox-loadbalancer/models"
)

type ErrorResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"errors,omitempty"`
}

func Error() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		err := c.Errors.Last()
		if err == nil {
			return
		}

		// Gin error handler
		if err, ok := errors.Cause(err.Err).(*gin.Error); ok {
			switch err.Type {
			case gin.ErrorTypeBind:
				c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
					Message: http.StatusText(http.StatusUnprocessableEntity),
					Error:   err.Error(),
				})
				return
			default:
				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: http.StatusText(http.StatusInternalServerError),
				})
				return
			}
		}

		// Validation error handler, duplicates map to conflict
		if err, ok := errors.Cause(err.Err).(*models.ValidationError); ok {
			status := http.StatusBadRequest
			if err.Duplicate {
				status = http.StatusConflict
			}

			c.JSON(status, ErrorResponse{
				Message: http.StatusText(status),
				Error:   err.Error(),
			})
			return
		}

		// GORM ErrRecordNotFound handler
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Message: http.StatusText(http.StatusNotFound),
			})
			return
		}

		// Unknown error
		c.JSON(http.StatusInternalServerError, nil)
	}
}
