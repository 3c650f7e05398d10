package memproblems

import "gitlab.com/codeduel-2025.net/internal/domain"

// seededProblems is the built-in duel problem set. Inputs arrive on stdin
// one value per line; answers are compared against expected stdout.
func seededProblems() []*domain.Problem {
	return []*domain.Problem{
		{
			ID:          "two-sum",
			Title:       "Two Sum",
			Difficulty:  domain.DifficultyEasy,
			Description: "Given an array of integers nums and an integer target, return indices of the two numbers such that they add up to target.",
			Examples: []domain.Example{
				{
					Input:       "nums = [2,7,11,15], target = 9",
					Output:      "[0,1]",
					Explanation: "Because nums[0] + nums[1] == 9, we return [0, 1].",
				},
			},
			Constraints: []string{
				"2 <= nums.length <= 10^4",
				"-10^9 <= nums[i] <= 10^9",
			},
			TestCases: []domain.TestCase{
				{Input: "[2,7,11,15]\n9", ExpectedOutput: "[0,1]", IsHidden: false},
				{Input: "[3,2,4]\n6", ExpectedOutput: "[1,2]", IsHidden: true},
				{Input: "[3,3]\n6", ExpectedOutput: "[0,1]", IsHidden: true},
			},
			StarterCode: map[string]string{
				"javascript": "function twoSum(nums, target) {\n  // Your code here\n  return [];\n}",
				"python":     "def two_sum(nums, target):\n    # Your code here\n    return []",
				"java":       "class Solution {\n    public int[] twoSum(int[] nums, int target) {\n        // Your code here\n        return new int[0];\n    }\n}",
			},
		},
		{
			ID:          "palindrome-number",
			Title:       "Palindrome Number",
			Difficulty:  domain.DifficultyEasy,
			Description: "Given an integer x, print true if x is a palindrome and false otherwise.",
			Examples: []domain.Example{
				{
					Input:       "x = 121",
					Output:      "true",
					Explanation: "121 reads as 121 from left to right and from right to left.",
				},
				{
					Input:  "x = -121",
					Output: "false",
				},
			},
			Constraints: []string{
				"-2^31 <= x <= 2^31 - 1",
			},
			TestCases: []domain.TestCase{
				{Input: "121", ExpectedOutput: "true", IsHidden: false},
				{Input: "-121", ExpectedOutput: "false", IsHidden: false},
				{Input: "10", ExpectedOutput: "false", IsHidden: true},
			},
			StarterCode: map[string]string{
				"javascript": "function isPalindrome(x) {\n  // Your code here\n  return false;\n}",
				"python":     "def is_palindrome(x):\n    # Your code here\n    return False",
				"java":       "class Solution {\n    public boolean isPalindrome(int x) {\n        // Your code here\n        return false;\n    }\n}",
			},
		},
		{
			ID:          "valid-parentheses",
			Title:       "Valid Parentheses",
			Difficulty:  domain.DifficultyEasy,
			Description: "Given a string s containing just the characters '(', ')', '{', '}', '[' and ']', print true if the input string is valid and false otherwise.",
			Examples: []domain.Example{
				{
					Input:  "s = \"()[]{}\"",
					Output: "true",
				},
				{
					Input:  "s = \"(]\"",
					Output: "false",
				},
			},
			Constraints: []string{
				"1 <= s.length <= 10^4",
			},
			TestCases: []domain.TestCase{
				{Input: "()[]{}", ExpectedOutput: "true", IsHidden: false},
				{Input: "(]", ExpectedOutput: "false", IsHidden: true},
				{Input: "([)]", ExpectedOutput: "false", IsHidden: true},
			},
			StarterCode: map[string]string{
				"javascript": "function isValid(s) {\n  // Your code here\n  return false;\n}",
				"python":     "def is_valid(s):\n    # Your code here\n    return False",
				"java":       "class Solution {\n    public boolean isValid(String s) {\n        // Your code here\n        return false;\n    }\n}",
			},
		},
		{
			ID:          "longest-substring",
			Title:       "Longest Substring Without Repeating Characters",
			Difficulty:  domain.DifficultyMedium,
			Description: "Given a string s, print the length of the longest substring without repeating characters.",
			Examples: []domain.Example{
				{
					Input:       "s = \"abcabcbb\"",
					Output:      "3",
					Explanation: "The answer is \"abc\", with the length of 3.",
				},
			},
			Constraints: []string{
				"0 <= s.length <= 5 * 10^4",
			},
			TestCases: []domain.TestCase{
				{Input: "abcabcbb", ExpectedOutput: "3", IsHidden: false},
				{Input: "bbbbb", ExpectedOutput: "1", IsHidden: true},
				{Input: "pwwkew", ExpectedOutput: "3", IsHidden: true},
			},
			StarterCode: map[string]string{
				"javascript": "function lengthOfLongestSubstring(s) {\n  // Your code here\n  return 0;\n}",
				"python":     "def length_of_longest_substring(s):\n    # Your code here\n    return 0",
				"java":       "class Solution {\n    public int lengthOfLongestSubstring(String s) {\n        // Your code here\n        return 0;\n    }\n}",
			},
		},
		{
			ID:          "rotate-array",
			Title:       "Rotate Array",
			Difficulty:  domain.DifficultyMedium,
			Description: "Given an array nums and an integer k, rotate the array to the right by k steps and print the result.",
			Examples: []domain.Example{
				{
					Input:       "nums = [1,2,3,4,5,6,7], k = 3",
					Output:      "[5,6,7,1,2,3,4]",
					Explanation: "Rotate 3 steps to the right.",
				},
			},
			Constraints: []string{
				"1 <= nums.length <= 10^5",
				"0 <= k <= 10^5",
			},
			TestCases: []domain.TestCase{
				{Input: "[1,2,3,4,5,6,7]\n3", ExpectedOutput: "[5,6,7,1,2,3,4]", IsHidden: false},
				{Input: "[-1,-100,3,99]\n2", ExpectedOutput: "[3,99,-1,-100]", IsHidden: true},
			},
			StarterCode: map[string]string{
				"javascript": "function rotate(nums, k) {\n  // Your code here\n  return nums;\n}",
				"python":     "def rotate(nums, k):\n    # Your code here\n    return nums",
				"java":       "class Solution {\n    public void rotate(int[] nums, int k) {\n        // Your code here\n    }\n}",
			},
		},
		{
			ID:          "median-sorted-arrays",
			Title:       "Median of Two Sorted Arrays",
			Difficulty:  domain.DifficultyHard,
			Description: "Given two sorted arrays nums1 and nums2, print the median of the two sorted arrays with one decimal place.",
			Examples: []domain.Example{
				{
					Input:       "nums1 = [1,3], nums2 = [2]",
					Output:      "2.0",
					Explanation: "Merged array = [1,2,3] and median is 2.",
				},
			},
			Constraints: []string{
				"0 <= nums1.length, nums2.length <= 1000",
			},
			TestCases: []domain.TestCase{
				{Input: "[1,3]\n[2]", ExpectedOutput: "2.0", IsHidden: false},
				{Input: "[1,2]\n[3,4]", ExpectedOutput: "2.5", IsHidden: true},
				{Input: "[]\n[1]", ExpectedOutput: "1.0", IsHidden: true},
			},
			StarterCode: map[string]string{
				"javascript": "function findMedianSortedArrays(nums1, nums2) {\n  // Your code here\n  return 0;\n}",
				"python":     "def find_median_sorted_arrays(nums1, nums2):\n    # Your code here\n    return 0.0",
				"java":       "class Solution {\n    public double findMedianSortedArrays(int[] nums1, int[] nums2) {\n        // Your code here\n        return 0.0;\n    }\n}",
			},
		},
	}
}
